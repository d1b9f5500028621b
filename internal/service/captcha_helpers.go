package service

import "time"

func normalizeCaptchaInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func captchaExpiration(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}
