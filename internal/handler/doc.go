// Package handler exposes the HTTP surface of the form gateway: the contact
// and job application endpoints, their middleware chain, and the JSON
// response envelope the frontend expects.
package handler
