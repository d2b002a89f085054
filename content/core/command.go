package core

import "sync"

type CommandKind int

const (
	CmdKeyDown CommandKind = iota
	CmdKeyUp
	CmdShowMenu
	CmdStart
	CmdToggleInstructions
	CmdRestart
	CmdPause
	CmdHide
	CmdShow
	CmdResume
)

type Command struct {
	Kind CommandKind
	Key  Key // 仅 CmdKeyDown / CmdKeyUp 使用
}

func KeyDown(k Key) Command { return Command{Kind: CmdKeyDown, Key: k} }
func KeyUp(k Key) Command   { return Command{Kind: CmdKeyUp, Key: k} }

// Queue 输入事件队列，可以从任意 goroutine 写入，每帧由 Controller 取出一次
type Queue struct {
	mu   sync.Mutex
	cmds []Command
	back []Command
}

func (q *Queue) Push(cmd Command) {
	q.mu.Lock()
	q.cmds = append(q.cmds, cmd)
	q.mu.Unlock()
}

// Drain 返回已入队的全部命令，返回的切片在下一次 Drain 之前有效
func (q *Queue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.cmds
	q.cmds = q.back[:0]
	q.back = out
	return out
}
