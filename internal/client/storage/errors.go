package storage

import "errors"

var (
	// ErrItemNotFound возвращается когда элемент очереди не найден
	ErrItemNotFound = errors.New("pending item not found")

	// ErrStorageClosed возвращается при обращении к закрытому хранилищу
	ErrStorageClosed = errors.New("storage is closed")
)
