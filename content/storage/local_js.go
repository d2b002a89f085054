//go:build js && wasm

package storage

import (
	"errors"
	"syscall/js"
)

// LocalStore 浏览器的 window.localStorage
type LocalStore struct {
	storage js.Value
}

// Open 浏览器中忽略 dir，使用 localStorage
func Open(dir string) (Store, error) {
	s := js.Global().Get("localStorage")
	if s.IsUndefined() || s.IsNull() {
		return nil, errors.New("localStorage is not available")
	}
	return &LocalStore{storage: s}, nil
}

func (l *LocalStore) Load(key string) (value string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("localStorage.getItem failed")
		}
	}()
	v := l.storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (l *LocalStore) Save(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("localStorage.setItem failed")
		}
	}()
	l.storage.Call("setItem", key, value)
	return nil
}
