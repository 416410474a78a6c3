package htmlpdf

import "errors"

// Sentinel errors returned by the library. Wrap checks should use
// [errors.Is]; conversion errors carry the backend's message in the
// wrapping error text.
var (
	// ErrClosed is returned when attempting to use a closed [Converter].
	ErrClosed = errors.New("htmlpdf: converter is closed")

	// ErrUnavailable is returned when no rendering backend could be
	// selected at construction time.
	ErrUnavailable = errors.New("htmlpdf: no PDF backend available")

	// ErrNotFound is returned when the input HTML file or directory
	// does not exist.
	ErrNotFound = errors.New("htmlpdf: not found")

	// ErrConversionFailed is returned when the selected backend failed
	// to render the document.
	ErrConversionFailed = errors.New("htmlpdf: conversion failed")
)
