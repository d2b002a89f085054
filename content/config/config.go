package config

type Mode int

const (
	ModeLoading Mode = iota
	ModeMenu
	ModeRunning
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeMenu:
		return "menu"
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	}
	return "unknown"
}

// 画布
const (
	ScreenWidth  = 400
	ScreenHeight = 400
	TPS          = 60
)

// 玩家
const (
	PlayerStartX = 200
	PlayerStartY = 200
	PlayerRadius = 15
	PlayerSpeed  = 4
)

// 金币
const (
	CoinCount      = 3
	CoinRadius     = 10
	CoinMargin     = 20 // 生成区域为 [0, ScreenWidth-CoinMargin)
	CoinPickup     = 20 // 中心距离小于该值即拾取
	CoinScore      = 10
	CoinFrameCount = 6
	CoinFrameEvery = 8 // 每绘制 8 次金币切换一帧
)

// 障碍物
const (
	ObstacleCount    = 3
	ObstacleWidth    = 50
	ObstacleHeight   = 20
	ObstacleSpawnMax = 300
	ObstacleMinSpeed = 1
	ObstacleMaxSpeed = 3
)

// 计时器，以 1/60 秒为单位
const (
	StartTime  = 30 * TPS
	CoinBonus  = 4 * TPS
	TimePerSec = TPS
)

// 界面切换
const (
	LoadingTicks        = 2 * TPS
	LoadingFailSafeMs   = 2500
	BackgroundScrollPx  = 0.5
	BallBounceBase      = 28
	BallBounceAmplitude = 2
	BallBouncePeriodMs  = 120
)

const (
	TitleFontSize = FontSize * 1.5
	FontSize      = 10
)

const StorageKey = "bestScore"
