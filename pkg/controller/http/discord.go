package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
	"github.com/notify-lab/herald/pkg/ndjson"
	"github.com/notify-lab/herald/pkg/usecase"
)

// DiscordHandler serves the Discord relay endpoints
type DiscordHandler struct {
	sendUC      usecase.SendUseCase
	directoryUC usecase.DirectoryUseCase
}

// NewDiscordHandler creates a new DiscordHandler
func NewDiscordHandler(sendUC usecase.SendUseCase, directoryUC usecase.DirectoryUseCase) *DiscordHandler {
	return &DiscordHandler{
		sendUC:      sendUC,
		directoryUC: directoryUC,
	}
}

// HandleValidateToken handles POST /api/discord/validate-token
func (h *DiscordHandler) HandleValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ValidateTokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	valid, err := h.sendUC.ValidateToken(ctx, req.Token)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, map[string]bool{"valid": valid})
}

// HandleSendDM handles POST /api/discord/send-dm
func (h *DiscordHandler) HandleSendDM(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.DMRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	attempt, err := h.sendUC.SendDirect(ctx, &req)
	if err != nil {
		if attempt != nil {
			// Token rejection still produces a failed attempt record,
			// returned with the authorization status
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			if encErr := json.NewEncoder(w).Encode(attempt); encErr != nil {
				ctxlog.From(ctx).Error("Failed to encode attempt", "error", encErr)
			}
			return
		}
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, attempt)
}

// HandleSendBulk handles POST /api/discord/send-bulk. Results are
// streamed as newline-delimited JSON, one record per recipient, in
// input order. Validation and authentication failures surface as plain
// error responses because nothing has been streamed yet.
func (h *DiscordHandler) HandleSendBulk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BulkDMRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	streaming := false
	writer := ndjson.NewWriter(w)
	emit := func(attempt *model.DeliveryAttempt) error {
		if !streaming {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			streaming = true
		}
		return writer.Encode(attempt)
	}

	if err := h.sendUC.SendBulk(ctx, &req, emit); err != nil {
		if streaming {
			// Headers are gone; the truncated stream is the signal
			ctxlog.From(ctx).Warn("bulk send interrupted mid-stream", "error", err)
			return
		}
		writeError(ctx, w, err)
	}
}

// HandleGuilds handles POST /api/discord/guilds
func (h *DiscordHandler) HandleGuilds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ValidateTokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	guilds, err := h.directoryUC.ListGuilds(ctx, req.Token)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, map[string][]*model.Guild{"guilds": guilds})
}

// HandleGuildMembers handles POST /api/discord/guild-members
func (h *DiscordHandler) HandleGuildMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.GuildMembersRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	members, err := h.directoryUC.ListGuildMembers(ctx, req.Token, req.GuildID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, map[string][]*model.GuildMember{"members": members})
}

// HandleHistory handles POST /api/discord/history
func (h *DiscordHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.HistoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	attempts, err := h.directoryUC.History(ctx, req.Token, req.UserID, 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, map[string][]*model.DeliveryAttempt{"attempts": attempts})
}

// decodeBody decodes a JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid request format",
			goerr.T(types.ErrTagValidation))
	}
	return nil
}
