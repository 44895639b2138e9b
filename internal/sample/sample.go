// Package sample holds small named functions and methods used as fixtures
// by code search tools. They are looked up by name and by reference.
package sample

// TargetFunction is the function search tools are expected to locate
func TargetFunction() string {
	// search target: standalone function
	return "target function"
}

// CallerFunction references TargetFunction
func CallerFunction() string {
	return "caller -> " + TargetFunction()
}

// Widget carries the method pair used for method lookups
type Widget struct {
	Name string
}

// TargetMethod is the method search tools are expected to locate
func (w *Widget) TargetMethod() string {
	return w.Name + ": target method"
}

// CallerMethod references TargetMethod
func (w *Widget) CallerMethod() string {
	return "caller -> " + w.TargetMethod()
}
