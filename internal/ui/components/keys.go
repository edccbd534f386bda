package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by the study screens.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	O        key.Binding
	X        key.Binding
	Bookmark key.Binding
	Delete   key.Binding
	Filter   key.Binding
	Search   key.Binding
	Explain  key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "위")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "아래")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "왼쪽")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "오른쪽")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "선택")),
	O:        key.NewBinding(key.WithKeys("o", "O", "1"), key.WithHelp("O", "맞다")),
	X:        key.NewBinding(key.WithKeys("x", "X", "2"), key.WithHelp("X", "틀리다")),
	Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("B", "북마크")),
	Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("D", "삭제")),
	Filter:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "유형")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "검색")),
	Explain:  key.NewBinding(key.WithKeys("e"), key.WithHelp("E", "AI 해설")),
}
