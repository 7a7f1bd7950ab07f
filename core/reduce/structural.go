package reduce

import "github.com/gaurav-prasanna/tgmarkup/core"

func keyboard(attrs core.Attrs, nodes []core.Node) *core.Keyboard {
	kb := &core.Keyboard{
		Inline:      attrs.Truthy("inline"),
		Persistent:  attrs.Truthy("persistent"),
		Selective:   attrs.Truthy("selective"),
		Resized:     attrs.Truthy("resized"),
		OneTime:     attrs.Truthy("oneTime"),
		Placeholder: attrs.TruthyString("placeholder"),
	}
	for _, n := range nodes {
		if r, ok := n.(*core.Row); ok {
			kb.Rows = append(kb.Rows, r)
		}
	}
	return kb
}

func row(nodes []core.Node) *core.Row {
	r := &core.Row{}
	for _, n := range nodes {
		if b, ok := n.(*core.Button); ok {
			r.Buttons = append(r.Buttons, b)
		}
	}
	return r
}

func button(attrs core.Attrs, nodes []core.Node) *core.Button {
	b := &core.Button{Text: buttonText(nodes)}

	in := &b.Inline
	in.CallbackData = attrs.TruthyString("callbackData")
	in.URL = attrs.TruthyString("url")
	attrs.Decode("webApp", &in.WebApp)
	attrs.Decode("loginUrl", &in.LoginURL)
	in.SwitchToChat = attrs.TruthyString("switchToChat")
	in.SwitchToChosenChat = chosenChat(attrs)
	in.SwitchToCurrentChat = attrs.TruthyString("switchToCurrentChat")
	in.CopyText = attrs.TruthyString("copyText")
	if attrs.Truthy("game") {
		in.Game = &core.CallbackGame{}
	}
	in.Pay = attrs.Truthy("pay")

	rp := &b.Reply
	rp.RequestContact = attrs.Truthy("requestContact")
	attrs.Decode("requestChat", &rp.RequestChat)
	rp.RequestLocation = attrs.Truthy("requestLocation")
	rp.RequestPoll = pollType(attrs)
	rp.WebApp = in.WebApp
	return b
}

// buttonText is the first child, stringified. Later children are ignored.
func buttonText(nodes []core.Node) string {
	if len(nodes) == 0 {
		return ""
	}
	switch x := nodes[0].(type) {
	case core.Text:
		return string(x)
	case core.Span:
		return x.String()
	}
	return ""
}

// chosenChat accepts either a bare query string or the full object.
func chosenChat(attrs core.Attrs) *core.SwitchInlineQueryChosenChat {
	if !attrs.Truthy("switchToChosenChat") {
		return nil
	}
	if q, ok := core.Scalar(attrs["switchToChosenChat"]); ok {
		return &core.SwitchInlineQueryChosenChat{Query: q}
	}
	var c *core.SwitchInlineQueryChosenChat
	if attrs.Decode("switchToChosenChat", &c) && c != nil {
		return c
	}
	return nil
}

// pollType accepts the poll type object, a bare type string, or a plain
// flag meaning any poll.
func pollType(attrs core.Attrs) *core.KeyboardButtonPollType {
	if !attrs.Truthy("requestPoll") {
		return nil
	}
	if t, ok := attrs["requestPoll"].(string); ok {
		return &core.KeyboardButtonPollType{Type: t}
	}
	var p *core.KeyboardButtonPollType
	if attrs.Decode("requestPoll", &p) && p != nil {
		return p
	}
	return &core.KeyboardButtonPollType{}
}

// mergeKeyboards folds the keyboards among a fragment's children into one.
// Mode and options come from the first keyboard; rows keep their order.
func mergeKeyboards(nodes []core.Node) *core.Keyboard {
	var merged *core.Keyboard
	for _, n := range nodes {
		kb, ok := n.(*core.Keyboard)
		if !ok {
			continue
		}
		if merged == nil {
			cp := *kb
			cp.Rows = append([]*core.Row(nil), kb.Rows...)
			merged = &cp
			continue
		}
		merged.Rows = append(merged.Rows, kb.Rows...)
	}
	return merged
}
