package utils

// SessionKeyPrefix is the prefix used for booking session keys in Redis.
const SessionKeyPrefix = "booking:session:"
