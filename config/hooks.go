package config

// PostRequestFunc is the canonical signature for the post_request server
// hook: it receives the worker, the request, the request environment and
// the response.
type PostRequestFunc func(worker, req any, env map[string]string, resp any)

// DefaultPostRequest is the post_request hook used when none is
// configured.
func DefaultPostRequest(worker, req any, env map[string]string, resp any) {}

// ValidatePostRequest resolves a post_request hook and normalizes it to
// the canonical four-argument form. Hooks written against the historical
// three- and two-argument conventions are wrapped, with the trailing
// arguments dropped when invoking.
func ValidatePostRequest(v any) (any, error) {
	w, err := ValidateCallable(-1)(v)
	if err != nil {
		return nil, err
	}
	switch fn := w.(type) {
	case PostRequestFunc:
		return fn, nil
	case func(worker, req any, env map[string]string, resp any):
		return PostRequestFunc(fn), nil
	case func(worker, req any, env map[string]string):
		return PostRequestFunc(func(worker, req any, env map[string]string, _ any) {
			fn(worker, req, env)
		}), nil
	case func(worker, req any):
		return PostRequestFunc(func(worker, req any, _ map[string]string, _ any) {
			fn(worker, req)
		}), nil
	}
	return nil, &TypeError{v, "post_request hook with 4, 3 or 2 parameters"}
}
