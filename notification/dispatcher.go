package notification

import (
	"context"
	"fmt"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/streamhub/config"
	"github.com/mohitkumar/streamhub/util"
)

type Request struct {
	Type          string `json:"type"`
	ActorId       int64  `json:"actorId"`
	DestinationId int64  `json:"destinationId"`
}

// Dispatcher fans a notification request out to its delivery channels. Only
// ever invoked from a follow-up task, never from the synchronous action path.
type Dispatcher interface {
	Dispatch(req Request) error
}

const NOTIFICATIONS string = "NOTIFICATIONS"

type redisDispatcher struct {
	redisClient rd.UniversalClient
	namespace   string
	encDec      util.EncoderDecoder[Request]
}

var _ Dispatcher = new(redisDispatcher)

func NewRedisDispatcher(conf config.RedisConfig) *redisDispatcher {
	redisClient := rd.NewUniversalClient(&rd.UniversalOptions{
		Addrs: conf.Addrs,
	})
	return &redisDispatcher{
		redisClient: redisClient,
		namespace:   conf.Namespace,
		encDec:      util.NewJsonEncoderDecoder[Request](),
	}
}

func (d *redisDispatcher) Dispatch(req Request) error {
	data, err := d.encDec.Encode(req)
	if err != nil {
		return err
	}
	ctx := context.Background()
	key := fmt.Sprintf("%s:%s", d.namespace, NOTIFICATIONS)
	return d.redisClient.LPush(ctx, key, data).Err()
}
