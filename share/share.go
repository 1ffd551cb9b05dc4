// Package share builds shareable links for events and hands them to whatever
// share surface the device offers, falling back to the clipboard.
package share

import (
	"fmt"

	"gigglesgo/notify"
	"gigglesgo/structs"
)

const urlBase = "https://gigglesandgo.gy/events/"

// Payload is what gets handed to the native share sheet.
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Sharer is the native share sheet. An error means the sheet was unavailable
// or dismissed and the caller should fall back.
type Sharer interface {
	Share(p Payload) error
}

// Clipboard is the fallback target.
type Clipboard interface {
	Copy(text string) error
}

func EventURL(ev structs.Event) string {
	return fmt.Sprintf("%s%d", urlBase, ev.ID)
}

func PayloadFor(ev structs.Event) Payload {
	return Payload{
		Title: ev.Title,
		Text:  "Check out this event: " + ev.Title,
		URL:   EventURL(ev),
	}
}

// FallbackText is the single line copied when no share sheet exists.
func FallbackText(ev structs.Event) string {
	return "Check out this event: " + ev.Title + " - " + EventURL(ev)
}

// Service runs the share-with-fallback flow.
type Service struct {
	sharer    Sharer
	clipboard Clipboard
	banners   *notify.Queue
}

func NewService(sharer Sharer, clipboard Clipboard, banners *notify.Queue) *Service {
	return &Service{sharer: sharer, clipboard: clipboard, banners: banners}
}

// Share tries the native sheet first, then the clipboard. Only the clipboard
// path announces itself; a successful native share needs no banner.
func (s *Service) Share(ev structs.Event) error {
	if s.sharer != nil {
		if err := s.sharer.Share(PayloadFor(ev)); err == nil {
			return nil
		}
	}
	if err := s.clipboard.Copy(FallbackText(ev)); err != nil {
		return &structs.CollaboratorError{Op: "copy share link", Err: err}
	}
	s.banners.Push(notify.BannerShare, "Link copied", "Event link copied to clipboard!")
	return nil
}
