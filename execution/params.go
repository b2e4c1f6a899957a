package execution

// Builders for follow-up task params. Values are kept JSON-friendly since the
// queue round-trips every payload through the codec.

func keysParam(keys []string) map[string]any {
	return map[string]any{"keys": keys}
}

func keysAndIdsParam(keys []string, ids []int64) map[string]any {
	return map[string]any{"keys": keys, "ids": ids}
}

func idParam(id int64) map[string]any {
	return map[string]any{"id": id}
}

func searchIndexParam(entityType string, ids []int64) map[string]any {
	return map[string]any{"entityType": entityType, "ids": ids}
}
