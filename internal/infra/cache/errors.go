package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда значение отсутствует в кеше
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrInternal возвращается при ошибках доступа к кешу
	ErrInternal = errors.New("cache: internal error")
)
