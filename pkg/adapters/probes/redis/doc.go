// Package redis provides the Redis dependency probe used by the health
// monitor. The probe owns a small go-redis pool and checks with PING.
package redis
