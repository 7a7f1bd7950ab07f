package core

// InlineActions are the capabilities an inline keyboard button may carry.
// Only one is honored when the button is extracted; see extract.Keyboard for
// the precedence.
type InlineActions struct {
	CallbackData        string
	URL                 string
	WebApp              *WebAppInfo
	LoginURL            *LoginURL
	SwitchToChat        string
	SwitchToChosenChat  *SwitchInlineQueryChosenChat
	SwitchToCurrentChat string
	CopyText            string
	Game                *CallbackGame
	Pay                 bool
}

// ReplyRequests are the capabilities a reply keyboard button may carry.
type ReplyRequests struct {
	RequestContact  bool
	RequestChat     *KeyboardButtonRequestChat
	RequestLocation bool
	RequestPoll     *KeyboardButtonPollType
	WebApp          *WebAppInfo
}

// Button is a keyboard button. Which half of it matters is decided by the
// keyboard it ends up in.
type Button struct {
	Text   string
	Inline InlineActions
	Reply  ReplyRequests
}

func (*Button) NodeType() NodeType { return ButtonNode }
func (*Button) node()              {}

// Row is an ordered run of buttons.
type Row struct {
	Buttons []*Button
}

func (*Row) NodeType() NodeType { return RowNode }
func (*Row) node()              {}

// Keyboard is a keyboard layout. Inline selects an inline keyboard; the
// remaining options only apply to reply keyboards.
type Keyboard struct {
	Inline bool
	Rows   []*Row

	Persistent  bool
	Selective   bool
	Resized     bool
	OneTime     bool
	Placeholder string
}

func (*Keyboard) NodeType() NodeType { return KeyboardNode }
func (*Keyboard) node()              {}
