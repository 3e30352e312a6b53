package api

import (
	"github.com/gin-gonic/gin"

	"github.com/oghanim/triviarena/internal/constants"
)

// RegisterRoutes mounts every session endpoint under the API prefix plus
// the bare /version probe.
func RegisterRoutes(router *gin.Engine, h *SessionHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteSessions, h.CreateSession)
		apiRoutes.POST(constants.RouteSessionsJoin, h.JoinSession)
		apiRoutes.GET(constants.RouteSessionByCode, h.GetSession)

		// Lobby
		apiRoutes.POST(constants.RouteReady, h.SetReady)
		apiRoutes.POST(constants.RouteRename, h.Rename)
		apiRoutes.POST(constants.RouteKick, h.Kick)
		apiRoutes.POST(constants.RouteSettings, h.UpdateSettings)
		apiRoutes.POST(constants.RouteCategories, h.SetCategories)
		apiRoutes.POST(constants.RouteGenerateCats, h.GenerateCategories)
		apiRoutes.POST(constants.RouteAssignAbility, h.AssignAbility)
		apiRoutes.POST(constants.RouteStartAuthoring, h.StartAuthoring)

		// Authoring
		apiRoutes.POST(constants.RouteQuestions, h.SubmitQuestion)
		apiRoutes.GET(constants.RouteQuestionSlots, h.QuestionSlots)
		apiRoutes.POST(constants.RouteReviewQuestion, h.ReviewQuestion)
		apiRoutes.POST(constants.RouteStartMatch, h.StartMatch)

		// Match
		apiRoutes.POST(constants.RouteSelectCell, h.SelectCell)
		apiRoutes.POST(constants.RouteRevealAnswer, h.RevealAnswer)
		apiRoutes.POST(constants.RouteResolve, h.Resolve)
		apiRoutes.POST(constants.RouteSkip, h.Skip)
		apiRoutes.POST(constants.RouteAdjustScore, h.AdjustScore)
		apiRoutes.POST(constants.RouteActivateAbility, h.ActivateAbility)
		apiRoutes.POST(constants.RouteClearAnnouncement, h.ClearAnnouncement)

		// Results
		apiRoutes.GET(constants.RouteRankings, h.Rankings)
		apiRoutes.GET(constants.RouteExport, h.Export)
	}
	router.GET("/version", Version)
}
