package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Courtside application
// Pattern: courtside:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for partner profiles
	TTL_STATIC_SHORT  = 6 * time.Hour  // 6 hours - for venue details
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_LONG   = 4 * time.Hour    // 4 hours - for city venue listings
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for partner venue listings
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // 1 hour - for search results
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for upcoming availability
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for dashboard summaries
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for slot availability
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // 2 minutes - for booking lists
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "courtside"
)

// ================== VENUES MODULE ==================

// Venue Cache Keys
const (
	CACHE_KEY_VENUES_BY_CITY    = CACHE_PREFIX + ":venues:city:"    // + city (lowercased)
	CACHE_KEY_VENUES_BY_PARTNER = CACHE_PREFIX + ":venues:partner:" // + partner-id
	CACHE_KEY_VENUE_DETAIL      = CACHE_PREFIX + ":venues:detail:"  // + venue-id
)

// Venue Cache TTLs
const (
	TTL_VENUES_BY_CITY    = TTL_SEMI_STATIC_SHORT // 1 hour
	TTL_VENUES_BY_PARTNER = TTL_SEMI_STATIC_QUICK // 15 minutes
	TTL_VENUE_DETAIL      = TTL_STATIC_SHORT      // 6 hours
)

// ================== SLOTS MODULE ==================

// Slot Cache Keys
const (
	CACHE_KEY_SLOTS_BY_VENUE_DATE = CACHE_PREFIX + ":slots:venue:" // + venue-id:date:YYYY-MM-DD
)

// Slot Cache TTLs
const (
	TTL_SLOTS_BY_VENUE_DATE = TTL_DYNAMIC_SHORT // 5 minutes
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	CACHE_KEY_PARTNER_BOOKINGS = CACHE_PREFIX + ":bookings:partner:" // + partner-id
	CACHE_KEY_USER_BOOKINGS    = CACHE_PREFIX + ":bookings:mobile:"  // + mobile
)

// Booking Cache TTLs
const (
	TTL_PARTNER_BOOKINGS = TTL_DYNAMIC_QUICK // 2 minutes
	TTL_USER_BOOKINGS    = TTL_DYNAMIC_QUICK // 2 minutes
)

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_PARTNER_SUMMARY = CACHE_PREFIX + ":analytics:partner:" // + partner-id
)

const (
	TTL_PARTNER_SUMMARY = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== AUTH MODULE ==================

// OTP keys are not cache entries in the usual sense: the stored value IS the
// source of truth for the login challenge, with the TTL acting as expiry.
const (
	KEY_OTP_BY_MOBILE      = CACHE_PREFIX + ":auth:otp:mobile:"      // + mobile
	KEY_OTP_ATTEMPTS       = CACHE_PREFIX + ":auth:otp:attempts:"    // + mobile
	CACHE_KEY_PARTNER_AUTH = CACHE_PREFIX + ":auth:partner:profile:" // + partner-id
)

const (
	TTL_PARTNER_AUTH = TTL_STATIC_SHORT // 6 hours
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_VENUES_ALL   = CACHE_PREFIX + ":venues:*"
	PATTERN_INVALIDATE_SLOTS_ALL    = CACHE_PREFIX + ":slots:*"
	PATTERN_INVALIDATE_BOOKINGS_ALL = CACHE_PREFIX + ":bookings:*"
	PATTERN_INVALIDATE_ANALYTICS    = CACHE_PREFIX + ":analytics:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildVenuesByCityKey(city string) string {
	return CACHE_KEY_VENUES_BY_CITY + city
}

func BuildVenuesByPartnerKey(partnerID string) string {
	return CACHE_KEY_VENUES_BY_PARTNER + partnerID
}

func BuildVenueDetailKey(venueID string) string {
	return CACHE_KEY_VENUE_DETAIL + venueID
}

func BuildSlotsKey(venueID, date string) string {
	return fmt.Sprintf("%s%s:date:%s", CACHE_KEY_SLOTS_BY_VENUE_DATE, venueID, date)
}

func BuildPartnerBookingsKey(partnerID string) string {
	return CACHE_KEY_PARTNER_BOOKINGS + partnerID
}

func BuildUserBookingsKey(mobile string) string {
	return CACHE_KEY_USER_BOOKINGS + mobile
}

func BuildPartnerSummaryKey(partnerID string) string {
	return CACHE_KEY_PARTNER_SUMMARY + partnerID
}

func BuildOTPKey(mobile string) string {
	return KEY_OTP_BY_MOBILE + mobile
}

func BuildOTPAttemptsKey(mobile string) string {
	return KEY_OTP_ATTEMPTS + mobile
}
