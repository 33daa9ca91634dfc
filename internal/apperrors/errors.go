package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRateFetch indicates that an exchange-rate snapshot could not be retrieved
// from the remote rate service. Fatal to any report that needs rates.
var ErrRateFetch = errors.New("failed to fetch exchange rates")

// ErrUnknownCurrency indicates that a currency code has no entry in the
// current rate snapshot. Recoverable at the reporting layer.
var ErrUnknownCurrency = errors.New("unknown currency")
