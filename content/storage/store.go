package storage

import (
	"log"
	"strconv"
	"strings"

	"coin-rush/content/config"
)

// Store 持久化的键值存储，只保存一个键
type Store interface {
	// Load 读取值，键不存在时 ok 为 false
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}

// Keeper 维护最高分，读写失败都不会中断游戏
type Keeper struct {
	store Store
	best  int
}

func NewKeeper(store Store) *Keeper {
	return &Keeper{store: store}
}

// LoadBestScore 读取最高分，不存在或无法解析时为 0
func (k *Keeper) LoadBestScore() int {
	v, ok, err := k.store.Load(config.StorageKey)
	if err != nil {
		log.Println("load best score:", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Println("parse best score:", err)
		return 0
	}
	k.best = n
	return n
}

// SaveBestScore 仅在严格大于已保存的最高分时写入
func (k *Keeper) SaveBestScore(score int) {
	if score <= k.best {
		return
	}
	if err := k.store.Save(config.StorageKey, strconv.Itoa(score)); err != nil {
		log.Println("save best score:", err)
		return
	}
	k.best = score
}

func (k *Keeper) Best() int { return k.best }
