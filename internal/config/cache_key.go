package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// TimetableEntriesKey returns the cache key for a timetable's normalized entries.
func (r *CacheKeyStruct) TimetableEntriesKey(timetableID string) string {
	return fmt.Sprintf("timetable:%s:entries", timetableID)
}

var CacheKey = NewCacheKeyStruct()
