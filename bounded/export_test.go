package bounded

func (c *Container[T]) Elements() []T {
	return c.s
}
