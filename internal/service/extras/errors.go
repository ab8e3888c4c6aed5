package extras

import "errors"

var (
	// ErrUnknownExtra возвращается, когда в выборе есть опция,
	// отсутствующая у лодки. Признак ошибки данных.
	ErrUnknownExtra = errors.New("extras pricer: selection references unknown extra")

	// ErrUnknownPack возвращается, когда выбранный пак не применим к лодке
	ErrUnknownPack = errors.New("extras pricer: selection references unknown pack")
)
