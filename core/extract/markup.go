package extract

import "github.com/gaurav-prasanna/tgmarkup/core"

// ReplyMarkup is a wire-shaped keyboard, ready for the reply_markup field of
// a Bot API request. Serialize it with encoding/json.
type ReplyMarkup interface {
	replyMarkup()
}

// InlineKeyboardMarkup is the Bot API InlineKeyboardMarkup object.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

func (*InlineKeyboardMarkup) replyMarkup() {}

// InlineKeyboardButton carries text and exactly one action field.
type InlineKeyboardButton struct {
	Text                         string                            `json:"text"`
	CallbackData                 string                            `json:"callback_data,omitempty"`
	URL                          string                            `json:"url,omitempty"`
	WebApp                       *core.WebAppInfo                  `json:"web_app,omitempty"`
	LoginURL                     *core.LoginURL                    `json:"login_url,omitempty"`
	SwitchInlineQuery            *string                           `json:"switch_inline_query,omitempty"`
	SwitchInlineQueryChosenChat  *core.SwitchInlineQueryChosenChat `json:"switch_inline_query_chosen_chat,omitempty"`
	SwitchInlineQueryCurrentChat *string                           `json:"switch_inline_query_current_chat,omitempty"`
	CallbackGame                 *core.CallbackGame                `json:"callback_game,omitempty"`
	CopyText                     *core.CopyTextButton              `json:"copy_text,omitempty"`
	Pay                          bool                              `json:"pay,omitempty"`
}

// ReplyKeyboardMarkup is the Bot API ReplyKeyboardMarkup object.
type ReplyKeyboardMarkup struct {
	Keyboard              [][]KeyboardButton `json:"keyboard"`
	IsPersistent          bool               `json:"is_persistent,omitempty"`
	ResizeKeyboard        bool               `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool               `json:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder string             `json:"input_field_placeholder,omitempty"`
	Selective             bool               `json:"selective,omitempty"`
}

func (*ReplyKeyboardMarkup) replyMarkup() {}

// KeyboardButton is a reply keyboard button; without a request field it
// sends its text.
type KeyboardButton struct {
	Text            string                          `json:"text"`
	RequestChat     *core.KeyboardButtonRequestChat `json:"request_chat,omitempty"`
	RequestContact  bool                            `json:"request_contact,omitempty"`
	RequestLocation bool                            `json:"request_location,omitempty"`
	RequestPoll     *core.KeyboardButtonPollType    `json:"request_poll,omitempty"`
	WebApp          *core.WebAppInfo                `json:"web_app,omitempty"`
}
