package simevents

// decodeComposite reads two field groups from the same payload. Both decoders
// see the identical read-only payload, so their order does not matter. The
// result is all or nothing: on failure both values are zero and the first
// failure is returned.
func decodeComposite[A, B any](
	p Payload,
	decodeA func(Payload) (A, error),
	decodeB func(Payload) (B, error),
) (A, B, error) {
	var (
		zeroA A
		zeroB B
	)

	a, err := decodeA(p)
	if err != nil {
		return zeroA, zeroB, err
	}

	b, err := decodeB(p)
	if err != nil {
		return zeroA, zeroB, err
	}

	return a, b, nil
}

// extend decodes a field group and then the variant's own fields from the same
// payload.
func extend[G, V any](
	p Payload,
	group func(Payload) (G, error),
	build func(g G, r *reader) V,
) (V, error) {
	var zero V

	g, err := group(p)
	if err != nil {
		return zero, err
	}

	r := newReader(p)
	v := build(g, r)

	if err := r.Err(); err != nil {
		return zero, err
	}
	return v, nil
}

// flat decodes a variant that owns all of its fields.
func flat[V any](p Payload, build func(r *reader) V) (V, error) {
	var zero V

	r := newReader(p)
	v := build(r)

	if err := r.Err(); err != nil {
		return zero, err
	}
	return v, nil
}
