package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"botforge/core"
	"botforge/middleware"
	"botforge/models/api"
	"botforge/services"
)

type BotsHTTPHandler struct {
	botsService   services.BotsService
	exportService services.ExportService
	reporter      ErrorReporter
}

func NewBotsHTTPHandler(
	botsService services.BotsService,
	exportService services.ExportService,
	reporter ErrorReporter,
) *BotsHTTPHandler {
	return &BotsHTTPHandler{
		botsService:   botsService,
		exportService: exportService,
		reporter:      reporter,
	}
}

type CreateBotRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateCommandRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	UserCode      *string `json:"userCode"`
	GeneratedCode *string `json:"generatedCode"`
}

type UpdateCommandCodeRequest struct {
	Code string `json:"code"`
}

type CreateEnvVarRequest struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

type ExportBotRequest struct {
	BotID string `json:"botId"`
}

func (h *BotsHTTPHandler) HandleCreateBot(w http.ResponseWriter, r *http.Request) {
	log.Printf("🤖 Create bot request received from %s", r.RemoteAddr)

	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req CreateBotRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	bot, err := h.botsService.CreateBot(r.Context(), ownerID, req.Name, req.Description)
	if err != nil {
		log.Printf("❌ Failed to create bot: %v", err)
		writeServiceError(w, h.reporter, err, "failed to create bot")
		return
	}

	log.Printf("✅ Bot created: %s", bot.ID)
	writeJSONResponse(w, http.StatusCreated, api.DomainBotToAPIBot(bot))
}

func (h *BotsHTTPHandler) HandleListBots(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	bots, err := h.botsService.GetBotsByOwnerID(r.Context(), ownerID)
	if err != nil {
		log.Printf("❌ Failed to list bots: %v", err)
		writeServiceError(w, h.reporter, err, "failed to list bots")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainBotsToAPIBots(bots))
}

func (h *BotsHTTPHandler) HandleGetBot(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	botID := mux.Vars(r)["id"]
	maybeBot, err := h.botsService.GetBotByID(r.Context(), ownerID, botID)
	if err != nil {
		log.Printf("❌ Failed to get bot %s: %v", botID, err)
		writeServiceError(w, h.reporter, err, "failed to get bot")
		return
	}

	bot, found := maybeBot.Get()
	if !found {
		writeErrorResponse(w, http.StatusNotFound, "bot not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainBotToAPIBot(bot))
}

func (h *BotsHTTPHandler) HandleUpdateBot(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req CreateBotRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	botID := mux.Vars(r)["id"]
	bot, err := h.botsService.UpdateBot(r.Context(), ownerID, botID, req.Name, req.Description)
	if err != nil {
		log.Printf("❌ Failed to update bot %s: %v", botID, err)
		writeServiceError(w, h.reporter, err, "failed to update bot")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainBotToAPIBot(bot))
}

func (h *BotsHTTPHandler) HandleDeleteBot(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	botID := mux.Vars(r)["id"]
	if err := h.botsService.DeleteBot(r.Context(), ownerID, botID); err != nil {
		log.Printf("❌ Failed to delete bot %s: %v", botID, err)
		writeServiceError(w, h.reporter, err, "failed to delete bot")
		return
	}

	log.Printf("✅ Bot deleted: %s", botID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *BotsHTTPHandler) HandleListCommands(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	botID := mux.Vars(r)["id"]
	commands, err := h.botsService.GetCommands(r.Context(), ownerID, botID)
	if err != nil {
		log.Printf("❌ Failed to list commands of bot %s: %v", botID, err)
		writeServiceError(w, h.reporter, err, "failed to list commands")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainCommandsToAPICommands(commands))
}

func (h *BotsHTTPHandler) HandleCreateCommand(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req CreateCommandRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	botID := mux.Vars(r)["id"]
	command, err := h.botsService.AddCommand(r.Context(), ownerID, botID, services.CommandParams{
		Name:          req.Name,
		Description:   req.Description,
		UserCode:      req.UserCode,
		GeneratedCode: req.GeneratedCode,
	})
	if err != nil {
		log.Printf("❌ Failed to add command to bot %s: %v", botID, err)
		writeServiceError(w, h.reporter, err, "failed to add command")
		return
	}

	log.Printf("✅ Command %s added to bot %s", command.ID, botID)
	writeJSONResponse(w, http.StatusCreated, api.DomainCommandToAPICommand(command))
}

func (h *BotsHTTPHandler) HandleGetCommand(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	maybeCommand, err := h.botsService.GetCommandByID(r.Context(), ownerID, vars["id"], vars["commandId"])
	if err != nil {
		log.Printf("❌ Failed to get command %s: %v", vars["commandId"], err)
		writeServiceError(w, h.reporter, err, "failed to get command")
		return
	}

	command, found := maybeCommand.Get()
	if !found {
		writeErrorResponse(w, http.StatusNotFound, "command not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainCommandToAPICommand(command))
}

func (h *BotsHTTPHandler) HandleUpdateCommandCode(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req UpdateCommandCodeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	vars := mux.Vars(r)
	command, err := h.botsService.UpdateCommandCode(r.Context(), ownerID, vars["id"], vars["commandId"], req.Code)
	if err != nil {
		log.Printf("❌ Failed to update code of command %s: %v", vars["commandId"], err)
		writeServiceError(w, h.reporter, err, "failed to update command")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainCommandToAPICommand(command))
}

func (h *BotsHTTPHandler) HandleDeleteCommand(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := h.botsService.DeleteCommand(r.Context(), ownerID, vars["id"], vars["commandId"]); err != nil {
		log.Printf("❌ Failed to delete command %s: %v", vars["commandId"], err)
		writeServiceError(w, h.reporter, err, "failed to delete command")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BotsHTTPHandler) HandleListEnvVars(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	botID := mux.Vars(r)["id"]
	envVars, err := h.botsService.GetEnvVars(r.Context(), ownerID, botID)
	if err != nil {
		log.Printf("❌ Failed to list env vars of bot %s: %v", botID, err)
		writeServiceError(w, h.reporter, err, "failed to list environment variables")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainEnvVarsToAPIEnvVars(envVars))
}

func (h *BotsHTTPHandler) HandleCreateEnvVar(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var req CreateEnvVarRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	botID := mux.Vars(r)["id"]
	envVar, err := h.botsService.AddEnvVar(r.Context(), ownerID, botID, req.Key, req.Description)
	if err != nil {
		log.Printf("❌ Failed to add env var to bot %s: %v", botID, err)
		writeServiceError(w, h.reporter, err, "failed to add environment variable")
		return
	}

	writeJSONResponse(w, http.StatusCreated, api.DomainEnvVarToAPIEnvVar(envVar))
}

func (h *BotsHTTPHandler) HandleDeleteEnvVar(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := h.botsService.DeleteEnvVar(r.Context(), ownerID, vars["id"], vars["envVarId"]); err != nil {
		log.Printf("❌ Failed to delete env var %s: %v", vars["envVarId"], err)
		writeServiceError(w, h.reporter, err, "failed to delete environment variable")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BotsHTTPHandler) HandleExportBot(w http.ResponseWriter, r *http.Request) {
	h.exportBot(w, r, mux.Vars(r)["id"])
}

// HandleExportBotByBody serves the export route that takes the bot ID in the body
func (h *BotsHTTPHandler) HandleExportBotByBody(w http.ResponseWriter, r *http.Request) {
	var req ExportBotRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.BotID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "botId is required")
		return
	}

	h.exportBot(w, r, req.BotID)
}

func (h *BotsHTTPHandler) exportBot(w http.ResponseWriter, r *http.Request, botID string) {
	log.Printf("📦 Export request received for bot %s", botID)

	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	export, err := h.exportService.ExportBot(r.Context(), ownerID, botID)
	if err != nil {
		log.Printf("❌ Failed to export bot %s: %v", botID, err)
		if core.IsNotFoundError(err) {
			writeErrorResponse(w, http.StatusNotFound, "bot not found")
			return
		}
		writeServiceError(w, h.reporter, err, "failed to export bot")
		return
	}

	log.Printf("✅ Exported bot %s with %d files", botID, len(export.Files))
	writeJSONResponse(w, http.StatusOK, api.DomainBotExportToAPI(export))
}

func (h *BotsHTTPHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.ClerkAuthMiddleware) {
	log.Printf("🚀 Registering bot endpoints")

	router.HandleFunc("/bots", authMiddleware.WithAuth(h.HandleListBots)).Methods("GET")
	log.Printf("✅ GET /bots endpoint registered")

	router.HandleFunc("/bots", authMiddleware.WithAuth(h.HandleCreateBot)).Methods("POST")
	log.Printf("✅ POST /bots endpoint registered")

	router.HandleFunc("/bots/{id}", authMiddleware.WithAuth(h.HandleGetBot)).Methods("GET")
	log.Printf("✅ GET /bots/{id} endpoint registered")

	router.HandleFunc("/bots/{id}", authMiddleware.WithAuth(h.HandleUpdateBot)).Methods("PUT")
	log.Printf("✅ PUT /bots/{id} endpoint registered")

	router.HandleFunc("/bots/{id}", authMiddleware.WithAuth(h.HandleDeleteBot)).Methods("DELETE")
	log.Printf("✅ DELETE /bots/{id} endpoint registered")

	router.HandleFunc("/bots/{id}/commands", authMiddleware.WithAuth(h.HandleListCommands)).Methods("GET")
	log.Printf("✅ GET /bots/{id}/commands endpoint registered")

	router.HandleFunc("/bots/{id}/commands", authMiddleware.WithAuth(h.HandleCreateCommand)).Methods("POST")
	log.Printf("✅ POST /bots/{id}/commands endpoint registered")

	router.HandleFunc("/bots/{id}/commands/{commandId}/code", authMiddleware.WithAuth(h.HandleUpdateCommandCode)).Methods("PUT")
	log.Printf("✅ PUT /bots/{id}/commands/{commandId}/code endpoint registered")

	router.HandleFunc("/bots/{id}/commands/{commandId}", authMiddleware.WithAuth(h.HandleGetCommand)).Methods("GET")
	log.Printf("✅ GET /bots/{id}/commands/{commandId} endpoint registered")

	router.HandleFunc("/bots/{id}/commands/{commandId}", authMiddleware.WithAuth(h.HandleDeleteCommand)).Methods("DELETE")
	log.Printf("✅ DELETE /bots/{id}/commands/{commandId} endpoint registered")

	router.HandleFunc("/bots/{id}/env-vars", authMiddleware.WithAuth(h.HandleListEnvVars)).Methods("GET")
	log.Printf("✅ GET /bots/{id}/env-vars endpoint registered")

	router.HandleFunc("/bots/{id}/env-vars", authMiddleware.WithAuth(h.HandleCreateEnvVar)).Methods("POST")
	log.Printf("✅ POST /bots/{id}/env-vars endpoint registered")

	router.HandleFunc("/bots/{id}/env-vars/{envVarId}", authMiddleware.WithAuth(h.HandleDeleteEnvVar)).Methods("DELETE")
	log.Printf("✅ DELETE /bots/{id}/env-vars/{envVarId} endpoint registered")

	router.HandleFunc("/bots/{id}/export", authMiddleware.WithAuth(h.HandleExportBot)).Methods("POST")
	log.Printf("✅ POST /bots/{id}/export endpoint registered")

	router.HandleFunc("/export", authMiddleware.WithAuth(h.HandleExportBotByBody)).Methods("POST")
	log.Printf("✅ POST /export endpoint registered")
}
