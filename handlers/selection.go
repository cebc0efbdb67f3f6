package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"

	"github.com/medishuttle/bookings.api.medishuttle.kr/helpers"
	"github.com/medishuttle/bookings.api.medishuttle.kr/models"
	"github.com/medishuttle/bookings.api.medishuttle.kr/service"
	"github.com/medishuttle/bookings.api.medishuttle.kr/utils"
)

// HandlePutSelection sets the route and travel date for the session
func HandlePutSelection(w http.ResponseWriter, req *http.Request) {
	sessionID, ok := sessionIDFromContext(w, req)
	if !ok {
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var putRequest models.PutSelectionRequest
	err := json.NewDecoder(req.Body).Decode(&putRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(putRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid PUT request to set selection: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	selection, responseType, err := bookingService.PutSelection(sessionID, putRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error setting selection: [%v]", err))
		writeErrorStatus(w, responseType)
		return
	}

	writeSelection(w, req, selection, http.StatusOK)
}

// HandlePatchSelection sets the payment method and provider on the selection
func HandlePatchSelection(w http.ResponseWriter, req *http.Request) {
	sessionID, ok := sessionIDFromContext(w, req)
	if !ok {
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var patchRequest models.PatchSelectionRequest
	err := json.NewDecoder(req.Body).Decode(&patchRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if patchRequest.PaymentMethod == "" && patchRequest.Provider == "" {
		log.ErrorR(req, fmt.Errorf("no updatable fields in PATCH request"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(patchRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid PATCH request to update selection: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	selection, responseType, err := bookingService.PatchSelection(sessionID, patchRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error updating selection: [%v]", err))
		if responseType == service.IncompleteSelection {
			utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("route and travel date must be chosen first"), http.StatusConflict)
			return
		}
		writeErrorStatus(w, responseType)
		return
	}

	writeSelection(w, req, selection, http.StatusOK)
}

// HandleGetSelection retrieves the in-progress selection for the session
func HandleGetSelection(w http.ResponseWriter, req *http.Request) {
	sessionID, ok := sessionIDFromContext(w, req)
	if !ok {
		return
	}

	selection, responseType, err := bookingService.GetSelection(sessionID)
	if err != nil {
		if responseType == service.NotFound {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.ErrorR(req, fmt.Errorf("error getting selection: [%v]", err))
		writeErrorStatus(w, responseType)
		return
	}

	writeSelection(w, req, selection, http.StatusOK)
}

// HandleDeleteSelection abandons the flow, removing the selection and any
// pending payment for the session
func HandleDeleteSelection(w http.ResponseWriter, req *http.Request) {
	sessionID, ok := sessionIDFromContext(w, req)
	if !ok {
		return
	}

	_, err := bookingService.ResetSelection(sessionID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error resetting selection: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sessionIDFromContext(w http.ResponseWriter, req *http.Request) (string, bool) {
	sessionID, ok := req.Context().Value(helpers.ContextKeySessionID).(string)
	if !ok || sessionID == "" {
		log.ErrorR(req, fmt.Errorf("invalid session id in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return "", false
	}
	return sessionID, true
}

func writeSelection(w http.ResponseWriter, req *http.Request, selection *models.SelectionRest, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(selection)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
		return
	}
}

func writeErrorStatus(w http.ResponseWriter, responseType service.ResponseType) {
	switch responseType {
	case service.InvalidData:
		w.WriteHeader(http.StatusBadRequest)
	case service.IncompleteSelection:
		w.WriteHeader(http.StatusConflict)
	case service.NotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
