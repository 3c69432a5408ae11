// Package services defines shared error classification helpers consumed by the
// transfer components and external integrations.
package services
