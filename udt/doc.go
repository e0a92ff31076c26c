// Package udt names uniform data types.
//
// A type is either one of the well-known kinds the platform catalog
// defines, or a Custom identifier chosen by an application. Both render
// to the same wire form, a dotted identifier such as "general.plain-text".
//
//	switch t := udt.Parse(s).(type) {
//	case udt.Kind:
//		// well-known
//	case udt.Custom:
//		// application defined
//	}
package udt
