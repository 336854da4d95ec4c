package errors

import (
	stderrors "errors"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// InvalidInputError is returned when a request body or parameter can not be parsed.
	InvalidInputError ErrorCode = "invalid_input"
	// UnsupportedGranularityError is returned when the requested granularity is outside the accepted set.
	UnsupportedGranularityError ErrorCode = "unsupported_granularity"
	// UnknownInstrumentError is returned when an asset pair id is unknown or disabled.
	UnknownInstrumentError ErrorCode = "unknown_instrument"
	// BatchTooLargeError is returned when more asset pairs are requested than allowed.
	BatchTooLargeError ErrorCode = "batch_too_large"
	// AssetPairLoadError is returned when the asset pair dictionary can not be loaded.
	AssetPairLoadError ErrorCode = "asset_pair_load_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"

	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"

	// RedisHGetError represents an error when getting a field from a hash in Redis.
	RedisHGetError ErrorCode = "redis_hget_error"
	// RedisHGetAllError represents an error when reading a whole hash from Redis.
	RedisHGetAllError ErrorCode = "redis_hgetall_error"
)

// IsValidation reports whether err carries one of the client input codes.
// These are rejected before any storage work is started.
func IsValidation(err error) bool {
	var details *ErrorDetails
	if !stderrors.As(err, &details) {
		return false
	}

	switch ErrorCode(details.Code) {
	case InvalidInputError, UnsupportedGranularityError, UnknownInstrumentError, BatchTooLargeError:
		return true
	default:
		return false
	}
}
