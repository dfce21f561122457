// Package kernel holds the value objects shared by every aggregate of the
// takeout domain: UUID identifiers and exact Money amounts.
package kernel
