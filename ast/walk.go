package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Children returns the non-nil direct children of node in source order.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil {
			out = append(out, n)
		}
	}
	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			add(stmt)
		}
	case *Block:
		for _, stmt := range n.Stmts {
			add(stmt)
		}
	case *ExprStmt:
		add(n.X)
	case *Print:
		add(n.X)
	case *VowelCheck:
		if n.Arg != nil {
			add(n.Arg)
		}
	case *If:
		add(n.Cond)
		add(n.Consequence)
		add(n.Alternative)
	case *While:
		add(n.Cond)
		add(n.Body)
	case *For:
		add(n.Init)
		add(n.Cond)
		add(n.Post)
		add(n.Body)
	case *Infix:
		add(n.X)
		add(n.Y)
	case *Compare:
		add(n.X)
		add(n.Y)
	case *Assign:
		if n.Name != nil {
			add(n.Name)
		}
		add(n.Value)
	case *Ident, *Int, *String:
		// No children
	}
	return out
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// If f returns false, the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at root
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
