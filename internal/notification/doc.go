// Package notification turns form submissions into fully-rendered email
// messages. It owns the submission types, their validation rules, and the
// HTML templates used to present them.
//
// Rendering goes through html/template so every submitted value is escaped
// in the HTML body, and subjects are stripped of markup before use. The
// renderer is safe for concurrent use.
package notification
