package model

import "errors"

var (
	// ErrUnauthenticated : неверные логин или пароль
	ErrUnauthenticated = errors.New("неверный логин или пароль")
	// ErrInvalidRefreshToken : любой отказ в refresh, причина наружу не раскрывается
	ErrInvalidRefreshToken = errors.New("невалидный refresh токен")
	// ErrInfrastructure : хранилище или БД недоступны, запрос можно повторить
	ErrInfrastructure = errors.New("хранилище недоступно")
	ErrNotFound       = errors.New("не найдено")

	ErrInvalidSignature = errors.New("неверная подпись токена")
	ErrTokenExpired     = errors.New("срок действия токена истек")
	ErrMalformedToken   = errors.New("некорректный токен")

	// ErrRefreshTokenConflict : условная ротация не применилась, значение уже изменилось
	ErrRefreshTokenConflict = errors.New("refresh токен уже был изменен")

	ErrUserAlreadyExists = errors.New("пользователь уже существует")
	ErrNameTaken         = errors.New("имя уже занято")
	ErrValidation        = errors.New("некорректные данные")

	// ErrMediaAlreadyListed : запись с таким mediaId и mediaType уже есть в списке
	ErrMediaAlreadyListed = errors.New("уже в списке")
)
