package configkeys

const (
	delimiter = "."

	EnvPrefix = "MEMO"

	CachePrefix   = "cache"
	CacheCapacity = CachePrefix + delimiter + "capacity"

	LogPrefix = "log"
	LogLevel  = LogPrefix + delimiter + "level"
)
