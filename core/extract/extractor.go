// Package extract implements the keyboard extractor. It turns a keyboard
// node into the wire shape of either an inline keyboard or a reply keyboard.
//
// Every button is matched against an ordered capability table for the
// keyboard's mode and the first capability the button carries wins:
//
//	inline: callbackData, url, webApp, loginUrl, switchToChat,
//	        switchToChosenChat, switchToCurrentChat, game, copyText, pay
//	reply:  requestContact, requestChat, requestLocation, requestPoll, webApp
//
// An inline button with no capability is dropped; a reply button with no
// capability becomes a plain text button.
package extract

import "github.com/gaurav-prasanna/tgmarkup/core"

type inlineCapability struct {
	name  string
	has   func(a *core.InlineActions) bool
	apply func(text string, a *core.InlineActions) InlineKeyboardButton
}

var inlineCapabilities = []inlineCapability{
	{
		name: "callback_data",
		has:  func(a *core.InlineActions) bool { return a.CallbackData != "" },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			return InlineKeyboardButton{Text: text, CallbackData: a.CallbackData}
		},
	},
	{
		name: "url",
		has:  func(a *core.InlineActions) bool { return a.URL != "" },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			return InlineKeyboardButton{Text: text, URL: a.URL}
		},
	},
	{
		name: "web_app",
		has:  func(a *core.InlineActions) bool { return a.WebApp != nil },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			return InlineKeyboardButton{Text: text, WebApp: &core.WebAppInfo{URL: a.WebApp.URL}}
		},
	},
	{
		name: "login_url",
		has:  func(a *core.InlineActions) bool { return a.LoginURL != nil },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			login := *a.LoginURL
			return InlineKeyboardButton{Text: text, LoginURL: &login}
		},
	},
	{
		name: "switch_inline_query",
		has:  func(a *core.InlineActions) bool { return a.SwitchToChat != "" },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			q := a.SwitchToChat
			return InlineKeyboardButton{Text: text, SwitchInlineQuery: &q}
		},
	},
	{
		name: "switch_inline_query_chosen_chat",
		has:  func(a *core.InlineActions) bool { return a.SwitchToChosenChat != nil },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			chosen := *a.SwitchToChosenChat
			return InlineKeyboardButton{Text: text, SwitchInlineQueryChosenChat: &chosen}
		},
	},
	{
		name: "switch_inline_query_current_chat",
		has:  func(a *core.InlineActions) bool { return a.SwitchToCurrentChat != "" },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			q := a.SwitchToCurrentChat
			return InlineKeyboardButton{Text: text, SwitchInlineQueryCurrentChat: &q}
		},
	},
	{
		name: "callback_game",
		has:  func(a *core.InlineActions) bool { return a.Game != nil },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			return InlineKeyboardButton{Text: text, CallbackGame: &core.CallbackGame{}}
		},
	},
	{
		name: "copy_text",
		has:  func(a *core.InlineActions) bool { return a.CopyText != "" },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			return InlineKeyboardButton{Text: text, CopyText: &core.CopyTextButton{Text: a.CopyText}}
		},
	},
	{
		name: "pay",
		has:  func(a *core.InlineActions) bool { return a.Pay },
		apply: func(text string, a *core.InlineActions) InlineKeyboardButton {
			return InlineKeyboardButton{Text: text, Pay: true}
		},
	},
}

type replyCapability struct {
	name  string
	has   func(r *core.ReplyRequests) bool
	apply func(text string, r *core.ReplyRequests) KeyboardButton
}

var replyCapabilities = []replyCapability{
	{
		name: "request_contact",
		has:  func(r *core.ReplyRequests) bool { return r.RequestContact },
		apply: func(text string, r *core.ReplyRequests) KeyboardButton {
			return KeyboardButton{Text: text, RequestContact: true}
		},
	},
	{
		name: "request_chat",
		has:  func(r *core.ReplyRequests) bool { return r.RequestChat != nil },
		apply: func(text string, r *core.ReplyRequests) KeyboardButton {
			chat := *r.RequestChat
			return KeyboardButton{Text: text, RequestChat: &chat}
		},
	},
	{
		name: "request_location",
		has:  func(r *core.ReplyRequests) bool { return r.RequestLocation },
		apply: func(text string, r *core.ReplyRequests) KeyboardButton {
			return KeyboardButton{Text: text, RequestLocation: true}
		},
	},
	{
		name: "request_poll",
		has:  func(r *core.ReplyRequests) bool { return r.RequestPoll != nil },
		apply: func(text string, r *core.ReplyRequests) KeyboardButton {
			return KeyboardButton{Text: text, RequestPoll: &core.KeyboardButtonPollType{Type: r.RequestPoll.Type}}
		},
	},
	{
		name: "web_app",
		has:  func(r *core.ReplyRequests) bool { return r.WebApp != nil },
		apply: func(text string, r *core.ReplyRequests) KeyboardButton {
			return KeyboardButton{Text: text, WebApp: &core.WebAppInfo{URL: r.WebApp.URL}}
		},
	},
}

// Keyboard extracts the wire-shaped markup of kb. The mode is fixed by
// kb.Inline for the whole call. A nil keyboard yields nil.
func Keyboard(kb *core.Keyboard) ReplyMarkup {
	if kb == nil {
		return nil
	}
	if kb.Inline {
		return inline(kb)
	}
	return reply(kb)
}

func inline(kb *core.Keyboard) *InlineKeyboardMarkup {
	var b builder[InlineKeyboardButton]
	for _, r := range kb.Rows {
		if r == nil {
			continue
		}
		for _, btn := range r.Buttons {
			if out, ok := InlineButton(btn); ok {
				b.add(out)
			}
		}
		b.row()
	}
	return &InlineKeyboardMarkup{InlineKeyboard: b.build()}
}

func reply(kb *core.Keyboard) *ReplyKeyboardMarkup {
	m := &ReplyKeyboardMarkup{}
	if kb.Persistent {
		m.IsPersistent = true
	}
	if kb.OneTime {
		m.OneTimeKeyboard = true
	}
	if kb.Selective {
		m.Selective = true
	}
	if kb.Resized {
		m.ResizeKeyboard = true
	}
	if kb.Placeholder != "" {
		m.InputFieldPlaceholder = kb.Placeholder
	}

	var b builder[KeyboardButton]
	for _, r := range kb.Rows {
		if r == nil {
			continue
		}
		for _, btn := range r.Buttons {
			if btn == nil {
				continue
			}
			b.add(ReplyButton(btn))
		}
		b.row()
	}
	m.Keyboard = b.build()
	return m
}

// InlineButton converts btn with the inline capability table. It reports
// false when btn carries no inline action.
func InlineButton(btn *core.Button) (InlineKeyboardButton, bool) {
	if btn == nil {
		return InlineKeyboardButton{}, false
	}
	for _, c := range inlineCapabilities {
		if c.has(&btn.Inline) {
			return c.apply(btn.Text, &btn.Inline), true
		}
	}
	return InlineKeyboardButton{}, false
}

// ReplyButton converts btn with the reply capability table, falling back to
// a plain text button.
func ReplyButton(btn *core.Button) KeyboardButton {
	for _, c := range replyCapabilities {
		if c.has(&btn.Reply) {
			return c.apply(btn.Text, &btn.Reply)
		}
	}
	return KeyboardButton{Text: btn.Text}
}

// Capability names the wire field btn would carry in the given mode, or ""
// when an inline button would be dropped.
func Capability(btn *core.Button, inline bool) string {
	if btn == nil {
		return ""
	}
	if inline {
		for _, c := range inlineCapabilities {
			if c.has(&btn.Inline) {
				return c.name
			}
		}
		return ""
	}
	for _, c := range replyCapabilities {
		if c.has(&btn.Reply) {
			return c.name
		}
	}
	return "text"
}
