package consterror

/*
	Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.

		TL;DR:
			const Break consterror.Error = `iterview:break`

	A const sentinel cannot be reassigned by consuming code,
	which makes it safe to compare against with errors.Is or ==.
*/
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }
