// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectMessages  = collectMessages
	FormatErrorChain = formatErrorChain
)
