package node

// StringRegNode decodes its register payload as a NUL-terminated, fixed
// length, UTF-8 string (§4.1, §4.6). Its maximum length is the register's
// own (possibly dynamic) LengthExpr, resolved by the engine rather than
// exposed as a static IString method.
type StringRegNode struct {
	RegisterBase
}
