package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/mohitkumar/streamhub/action"
	"github.com/mohitkumar/streamhub/logger"
	"github.com/mohitkumar/streamhub/model"
	"go.uber.org/zap"
)

func (s *Server) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupId, err := pathId(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	result, err := s.profileService.DeleteGroup(principalFrom(r), groupId)
	if err != nil {
		logger.Error("error deleting group", zap.Int64("groupId", groupId), zap.Error(err))
		respondActionError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (s *Server) HandleDeleteOrganization(w http.ResponseWriter, r *http.Request) {
	orgId, err := pathId(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid organization id")
		return
	}
	result, err := s.profileService.DeleteOrganization(principalFrom(r), orgId)
	if err != nil {
		logger.Error("error deleting organization", zap.Int64("organizationId", orgId), zap.Error(err))
		respondActionError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (s *Server) HandleSetFollowing(w http.ResponseWriter, r *http.Request) {
	groupId, err := pathId(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	var req model.SetFollowingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()
	req.GroupId = groupId
	result, err := s.profileService.SetGroupFollowing(principalFrom(r), req)
	if err != nil {
		logger.Error("error setting group following", zap.Int64("groupId", groupId), zap.Error(err))
		respondActionError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"followerCount": result})
}

func (s *Server) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	groupId, err := pathId(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	personId, err := pathId(r, "personId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid person id")
		return
	}
	req := model.SetFollowingStatusRequest{FollowerId: personId, GroupId: groupId, Following: false}
	result, err := s.profileService.SetGroupFollowing(principalFrom(r), req)
	if err != nil {
		logger.Error("error removing group follower", zap.Int64("groupId", groupId), zap.Error(err))
		respondActionError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"followerCount": result})
}

func (s *Server) HandleGetPerson(w http.ResponseWriter, r *http.Request) {
	personId, err := pathId(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid person id")
		return
	}
	result, err := s.profileService.GetPerson(principalFrom(r), personId)
	if err != nil {
		respondActionError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (s *Server) HandleRemoveCoordinator(w http.ResponseWriter, r *http.Request) {
	groupId, err := pathId(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	personId, err := pathId(r, "personId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid person id")
		return
	}
	req := model.RemoveCoordinatorRequest{GroupId: groupId, PersonId: personId}
	result, err := s.profileService.RemoveGroupCoordinator(principalFrom(r), req)
	if err != nil {
		logger.Error("error removing group coordinator", zap.Int64("groupId", groupId), zap.Error(err))
		respondActionError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"result": result})
}

func pathId(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func principalFrom(r *http.Request) action.Principal {
	personId, _ := strconv.ParseInt(r.Header.Get("X-Person-Id"), 10, 64)
	return action.Principal{
		Id:        personId,
		AccountId: r.Header.Get("X-Account-Id"),
	}
}

func respondActionError(w http.ResponseWriter, err error) {
	var notFound action.NotFoundError
	var validation action.ValidationError
	switch {
	case errors.As(err, &notFound):
		respondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &validation):
		respondWithError(w, http.StatusBadRequest, validation.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "error executing action")
	}
}
