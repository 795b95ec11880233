package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ignite/author-registry/internal/domain"
	"github.com/ignite/author-registry/internal/pkg/logger"
	"github.com/ignite/author-registry/internal/service/author"
)

// createAuthorRequestBody is the JSON body for POST /api/authors.
type createAuthorRequestBody struct {
	Name         string `json:"name"`
	EmailAddress string `json:"email_address,omitempty"`
}

// createAuthorResponseData is the success payload for POST /api/authors.
type createAuthorResponseData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HandleCreateAuthor validates the request body and delegates to the author
// service. Validation failures and duplicate names are 422; anything else
// from the repository is a 500 with the cause logged server-side only.
func (h *Handlers) HandleCreateAuthor(w http.ResponseWriter, r *http.Request) {
	var body createAuthorRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	name, err := domain.NewAuthorName(body.Name)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var email domain.EmailAddress
	if body.EmailAddress != "" {
		email, err = domain.NewEmailAddress(body.EmailAddress)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	created, err := h.authors.CreateAuthor(r.Context(), domain.NewCreateAuthorRequest(name, email))
	if err != nil {
		var dup *author.DuplicateError
		if errors.As(err, &dup) {
			respondError(w, http.StatusUnprocessableEntity, dup.Error())
			return
		}
		// The cause never reaches the client.
		logger.Error("create author failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, createAuthorResponseData{
		ID:   created.ID.String(),
		Name: created.Name.String(),
	})
}
