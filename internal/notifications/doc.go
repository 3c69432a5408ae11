// Package notifications delivers optional ntfy push notifications for transfer
// outcomes. With no topic configured every notification is a no-op.
package notifications
