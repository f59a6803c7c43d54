// SPDX-License-Identifier: Unlicense OR MIT

// Package mock holds generated mocks of the toast interfaces for tests.
package mock

//go:generate mockgen -destination=layout.go -package=mock gioui.org/toast/layout Container
//go:generate mockgen -destination=text.go -package=mock gioui.org/toast/text Measurer
