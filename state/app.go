// Package state assembles one app session: every store wired to the shared
// banner queues. Nothing here is a singleton; tests build as many sessions
// as they like.
package state

import (
	"gigglesgo/calendarsync"
	"gigglesgo/catalog"
	"gigglesgo/feedback"
	"gigglesgo/kv"
	"gigglesgo/notify"
	"gigglesgo/pass"
	"gigglesgo/profile"
	"gigglesgo/screens"
	"gigglesgo/settings"
	"gigglesgo/share"
	"gigglesgo/utils"
	"gigglesgo/wizard"
)

type App struct {
	Banners  *notify.Queue
	Catalog  *catalog.Store
	Router   *screens.Router
	Settings *settings.Store
	Profile  *profile.Store
	Wizard   *wizard.Wizard
	Drafts   *wizard.MemoryDrafts
	Pub      *wizard.MemoryPublisher
	History  *calendarsync.History
	Share    *share.Service
	Feedback *feedback.Store
	Signer   *pass.Signer
	KV       kv.Store
}

type Options struct {
	// BannerCapacity 1 gives replace-on-push; larger capacities stack.
	BannerCapacity int
	KV             kv.Store
	Sharer         share.Sharer
	PassSecret     string
}

func NewApp(opts Options) *App {
	if opts.BannerCapacity <= 0 {
		opts.BannerCapacity = 1
	}
	if opts.KV == nil {
		opts.KV = kv.NewMemory()
	}
	if opts.PassSecret == "" {
		opts.PassSecret = "giggles-dev-secret"
	}

	banners := notify.NewQueue(opts.BannerCapacity)
	drafts := wizard.NewMemoryDrafts()
	pub := wizard.NewMemoryPublisher()

	return &App{
		Banners:  banners,
		Catalog:  catalog.NewStore(banners),
		Router:   screens.NewRouter(),
		Settings: settings.NewStore(opts.KV, banners),
		Profile:  profile.NewStore(banners),
		Wizard:   wizard.New(banners, pub, drafts),
		Drafts:   drafts,
		Pub:      pub,
		History:  calendarsync.NewHistory(),
		Share:    share.NewService(opts.Sharer, share.NewMemoryClipboard(), banners),
		Feedback: feedback.NewStore(banners, utils.GetUUID),
		Signer:   pass.NewSigner(opts.PassSecret),
		KV:       opts.KV,
	}
}

// Close cancels every pending timer so nothing fires after the session ends.
func (a *App) Close() {
	a.Wizard.Close()
	a.Router.Close()
	a.Banners.Close()
}
