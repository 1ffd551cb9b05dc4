package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/calendarsync"
	"gigglesgo/catalog"
	"gigglesgo/feedback"
	"gigglesgo/maps"
	"gigglesgo/notify"
	"gigglesgo/pass"
	"gigglesgo/profile"
	"gigglesgo/ratelim"
	"gigglesgo/screens"
	"gigglesgo/settings"
	"gigglesgo/share"
	"gigglesgo/wizard"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/submissionpic/*filepath", http.Dir("uploads/submissions"))
}

func AddEventRoutes(router *httprouter.Router, h *catalog.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/events", h.GetEvents)
	router.GET("/api/chips", h.GetChips)
	router.POST("/api/chips/:chipid/toggle", h.ToggleChip)
	router.GET("/api/events/:eventid", h.GetEvent)
	router.POST("/api/events/:eventid/save", h.ToggleSave)
	router.POST("/api/events/:eventid/register", rl.Limit(h.Register))
	router.POST("/api/events/:eventid/question", rl.Limit(h.SubmitQuestion))
	router.GET("/api/saved", h.GetSavedEvents)
}

func AddScreenRoutes(router *httprouter.Router, h *screens.Handler) {
	router.GET("/api/screen", h.GetScreen)
	router.POST("/api/screen/navigate", h.Navigate)
	router.POST("/api/screen/back", h.GoBack)
	router.POST("/api/signout", h.SignOut)
}

func AddNotificationRoutes(router *httprouter.Router, h *notify.Handler) {
	router.GET("/api/banners", h.GetBanners)
	router.POST("/api/banners/:bannerid/dismiss", h.DismissBanner)
	router.GET("/ws/banners", h.Stream)
}

func AddSettingsRoutes(router *httprouter.Router, h *settings.Handler) {
	router.GET("/api/settings", h.GetSettings)
	router.PUT("/api/settings", h.UpdateSetting)
	router.GET("/api/settings/theme", h.GetTheme)
	router.PUT("/api/settings/theme", h.SetTheme)
}

func AddProfileRoutes(router *httprouter.Router, h *profile.Handler) {
	router.GET("/api/profile", h.GetProfile)
	router.POST("/api/profile/edit", h.BeginEdit)
	router.PUT("/api/profile/edit", h.UpdateDraft)
	router.POST("/api/profile/edit/commit", h.Commit)
	router.POST("/api/profile/edit/discard", h.Discard)
	router.POST("/api/profile/children", h.AddChild)
	router.PUT("/api/profile/children/:childid", h.UpdateChild)
	router.DELETE("/api/profile/children/:childid", h.RemoveChild)
}

func AddWizardRoutes(router *httprouter.Router, h *wizard.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/submit", h.GetState)
	router.GET("/api/submit/options", h.GetOptions)
	router.PUT("/api/submit/field", h.SetField)
	router.PUT("/api/submit/details", h.SetDetails)
	router.POST("/api/submit/tags", h.AddTag)
	router.DELETE("/api/submit/tags/:tag", h.RemoveTag)
	router.POST("/api/submit/images", h.UploadImages)
	router.DELETE("/api/submit/images/:name", h.RemoveImage)
	router.POST("/api/submit/next", h.NextStep)
	router.POST("/api/submit/prev", h.PrevStep)
	router.POST("/api/submit/step/:step", h.GoToStep)
	router.POST("/api/submit/draft", h.SaveDraft)
	router.POST("/api/submit", rl.Limit(h.Submit))
	router.POST("/api/submit/reset", h.Reset)
}

func AddCalendarRoutes(router *httprouter.Router, h *calendarsync.Handler) {
	router.GET("/api/calendar/event/:eventid/link/:provider", h.GetLink)
	router.GET("/api/calendar/event/:eventid/ics", h.DownloadICS)
	router.GET("/api/calendar/history", h.GetHistory)
}

func AddShareRoutes(router *httprouter.Router, h *share.Handler) {
	router.POST("/api/share/:eventid", h.ShareEvent)
	router.GET("/api/share/:eventid/qr", h.GetQR)
}

func AddMapRoutes(router *httprouter.Router, h *maps.Handler) {
	router.GET("/api/map", h.GetMap)
	router.GET("/api/map/presets", h.GetPresets)
}

func AddFeedbackRoutes(router *httprouter.Router, h *feedback.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/feedback", rl.Limit(h.Submit))
}

func AddPassRoutes(router *httprouter.Router, h *pass.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/pass/print/:eventid", rl.Limit(h.PrintPass))
	router.GET("/api/pass/verify", h.VerifyPass)
}
