package core

// Key 逻辑按键名，键盘按键和触屏按钮各有自己的名字
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "w"
	KeyS          Key = "s"
	KeyA          Key = "a"
	KeyD          Key = "d"
	KeyTouchUp    Key = "touch:up"
	KeyTouchDown  Key = "touch:down"
	KeyTouchLeft  Key = "touch:left"
	KeyTouchRight Key = "touch:right"
)

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directionKeys = [...][]Key{
	DirUp:    {KeyArrowUp, KeyW, KeyTouchUp},
	DirDown:  {KeyArrowDown, KeyS, KeyTouchDown},
	DirLeft:  {KeyArrowLeft, KeyA, KeyTouchLeft},
	DirRight: {KeyArrowRight, KeyD, KeyTouchRight},
}

// Input 当前按住的按键
type Input map[Key]bool

// Held 任意一个来源按住即视为该方向按下
func (in Input) Held(d Direction) bool {
	for _, k := range directionKeys[d] {
		if in[k] {
			return true
		}
	}
	return false
}
