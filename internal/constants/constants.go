package constants

// Centralized constants for env keys, routes, JSON keys and messages.
const (
	// Environment variable keys
	EnvConfigPath   = "TRIVIARENA_CONFIG"
	EnvDBPath       = "TRIVIARENA_DB"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"

	// HTTP headers and content types
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"

	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// OpenAI API endpoint used for category generation
	OpenAIBaseURL             = "https://api.openai.com"
	OpenAIChatCompletionsPath = "/v1/chat/completions"
	OpenAIChatModel           = "gpt-5-nano"
)

// Routes used by the backend router
const (
	RouteAPIPrefix         = "/api"
	RouteSessions          = "/sessions"
	RouteSessionsJoin      = "/sessions/join"
	RouteSessionByCode     = "/sessions/:code"
	RouteReady             = "/sessions/:code/ready"
	RouteRename            = "/sessions/:code/rename"
	RouteKick              = "/sessions/:code/kick"
	RouteSettings          = "/sessions/:code/settings"
	RouteCategories        = "/sessions/:code/categories"
	RouteGenerateCats      = "/sessions/:code/categories/generate"
	RouteAssignAbility     = "/sessions/:code/abilities/assign"
	RouteActivateAbility   = "/sessions/:code/abilities/activate"
	RouteClearAnnouncement = "/sessions/:code/announcement/clear"
	RouteStartAuthoring    = "/sessions/:code/start-authoring"
	RouteQuestions         = "/sessions/:code/questions"
	RouteQuestionSlots     = "/sessions/:code/questions/slots"
	RouteReviewQuestion    = "/sessions/:code/questions/:questionID/review"
	RouteStartMatch        = "/sessions/:code/start-match"
	RouteSelectCell        = "/sessions/:code/board/select"
	RouteRevealAnswer      = "/sessions/:code/board/reveal-answer"
	RouteResolve           = "/sessions/:code/board/resolve"
	RouteSkip              = "/sessions/:code/board/skip"
	RouteAdjustScore       = "/sessions/:code/score"
	RouteRankings          = "/sessions/:code/rankings"
	RouteExport            = "/sessions/:code/export"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidJoinCode     = "Invalid session code"
	ErrSessionNotFound     = "Session not found"
	ErrFailedCreateSession = "Failed to create session"
	ErrFailedUpdateSession = "Failed to update session"
	ErrFailedEncodeSession = "Failed to encode session"
)

// Logging field names
const (
	LogFieldSessionID = "session_id"
	LogFieldJoinCode  = "join_code"
	LogFieldUUID      = "participant_uuid"
	LogFieldQuestion  = "question_uuid"
	LogFieldName      = "name"
	LogFieldAddr      = "addr"
	LogFieldSource    = "source"
	LogFieldCount     = "count"
)
