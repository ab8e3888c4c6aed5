package catalog

import "errors"

var (
	// ErrBoatNotFound возвращается, когда лодка отсутствует в каталоге
	ErrBoatNotFound = errors.New("boat not found in catalog")

	// ErrPackNotFound возвращается, когда пак не существует или не применим к лодке
	ErrPackNotFound = errors.New("extra pack not found for boat")

	// ErrNoSuchPrice возвращается, когда для комбинации лодка/сезон/продолжительность
	// нет цены в тарифной таблице. Признак ошибки данных каталога.
	ErrNoSuchPrice = errors.New("no price for boat/season/duration combination")

	// ErrInconsistentSeasons возвращается при загрузке каталога, когда сезоны
	// одной лодки определяют разные наборы продолжительностей
	ErrInconsistentSeasons = errors.New("seasons define different duration key sets")

	// ErrIllegalDurationSet возвращается при загрузке каталога, когда набор
	// продолжительностей лодки не соответствует ее категории прав
	ErrIllegalDurationSet = errors.New("duration key set does not match license category")

	// ErrNegativePackSavings возвращается при загрузке каталога, когда цена пака
	// выше суммы цен его опций по отдельности
	ErrNegativePackSavings = errors.New("pack bundle price exceeds sum of item prices")

	// ErrInternal возвращается при внутренних ошибках сервиса каталога
	ErrInternal = errors.New("catalog service: internal error")
)
