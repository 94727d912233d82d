package engine

import (
	"unicode/utf8"

	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/types"
)

// ReadBytes implements IRegister's raw byte read for RegisterNode: the
// full declared-length payload, uninterpreted.
func (e *Engine) ReadBytes(id types.NodeID) ([]byte, error) {
	n, err := e.lookupNode(id)
	if err != nil {
		return nil, err
	}
	rn, ok := n.(*node.RegisterNode)
	if !ok {
		return nil, types.ErrInvalidNode
	}
	if err := checkReadable(rn.EffectiveAccessMode(), nodeName(e, rn.ID)); err != nil {
		return nil, err
	}
	info, err := e.resolveRegister(&rn.RegisterBase)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, info.length)
	if err := info.dev.ReadMem(info.address, raw); err != nil {
		return nil, types.New(types.ErrKindDevice, "read_mem failed", err)
	}
	return raw, nil
}

// WriteBytes implements IRegister's raw byte write for RegisterNode. The
// caller's buffer must exactly match the register's declared length
// (§7's InvalidBuffer).
func (e *Engine) WriteBytes(id types.NodeID, data []byte) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	rn, ok := n.(*node.RegisterNode)
	if !ok {
		return types.ErrInvalidNode
	}
	if err := checkWritable(rn.EffectiveAccessMode(), nodeName(e, rn.ID)); err != nil {
		return err
	}
	info, err := e.resolveRegister(&rn.RegisterBase)
	if err != nil {
		return err
	}
	if len(data) != info.length {
		return types.ErrInvalidBuffer
	}
	if err := info.dev.WriteMem(info.address, data); err != nil {
		return types.New(types.ErrKindDevice, "write_mem failed", err)
	}
	e.Cache.Invalidate(rn.ID)
	return nil
}

// ReadString implements the register read pipeline for StringReg: a
// NUL-terminated, fixed-length string validated as UTF-8 up to the first
// NUL (§4.1).
func (e *Engine) ReadString(id types.NodeID) (string, error) {
	n, err := e.lookupNode(id)
	if err != nil {
		return "", err
	}
	switch v := n.(type) {
	case *node.StringRegNode:
		return e.readStringReg(v)
	case *node.StringNode:
		if v.PValue != types.InvalidNodeID {
			return e.ReadString(v.PValue)
		}
		val, err := e.Values.Get(v.DefaultValue)
		if err != nil {
			return "", err
		}
		return val.S, nil
	default:
		return "", types.ErrInvalidNode
	}
}

func (e *Engine) readStringReg(n *node.StringRegNode) (string, error) {
	if err := checkReadable(n.EffectiveAccessMode(), nodeName(e, n.ID)); err != nil {
		return "", err
	}
	if cached, ok := e.Cache.Get(n.ID); ok && n.Cacheable != types.NoCache {
		if s, ok := cached.(string); ok {
			return s, nil
		}
	}
	info, err := e.resolveRegister(&n.RegisterBase)
	if err != nil {
		return "", err
	}
	raw := make([]byte, info.length)
	if err := info.dev.ReadMem(info.address, raw); err != nil {
		return "", types.New(types.ErrKindDevice, "read_mem failed", err)
	}
	end := 0
	for end < len(raw) && raw[end] != 0 {
		end++
	}
	if !utf8.Valid(raw[:end]) {
		return "", types.New(types.ErrKindInvalidData, "string register is not valid UTF-8", nil)
	}
	s := string(raw[:end])
	if n.Cacheable != types.NoCache {
		e.Cache.Put(n.ID, s)
	}
	return s, nil
}

// WriteString implements the register write pipeline for StringReg,
// NUL-padding (or rejecting if too long) to the declared length.
func (e *Engine) WriteString(id types.NodeID, s string) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	sr, ok := n.(*node.StringRegNode)
	if !ok {
		return types.ErrInvalidNode
	}
	if err := checkWritable(sr.EffectiveAccessMode(), nodeName(e, sr.ID)); err != nil {
		return err
	}
	info, err := e.resolveRegister(&sr.RegisterBase)
	if err != nil {
		return err
	}
	if len(s) >= info.length {
		return types.New(types.ErrKindInvalidData, "string exceeds register length", nil)
	}
	raw := make([]byte, info.length)
	copy(raw, s)
	if err := info.dev.WriteMem(info.address, raw); err != nil {
		return types.New(types.ErrKindDevice, "write_mem failed", err)
	}
	e.Cache.Invalidate(sr.ID)
	if sr.Cacheable == types.WriteThrough {
		e.Cache.Put(sr.ID, s)
	}
	return nil
}
