package spline

// vec4 and mat4 carry the fixed-size basis algebra shared by the cubic
// evaluators. They stay generic over V, which rules out a float64-only
// matrix package.

type vec4[V Value[V]] [4]V

// mat4 is a 4x4 matrix in row-major order.
type mat4[V Value[V]] [4][4]V

// mulVec returns m·v.
func (m mat4[V]) mulVec(v vec4[V]) vec4[V] {
	var out vec4[V]
	for i := range m {
		acc := m[i][0].Mul(v[0])
		for j := 1; j < 4; j++ {
			acc = acc.Add(m[i][j].Mul(v[j]))
		}
		out[i] = acc
	}
	return out
}

// dot returns v·u.
func (v vec4[V]) dot(u vec4[V]) V {
	acc := v[0].Mul(u[0])
	for i := 1; i < 4; i++ {
		acc = acc.Add(v[i].Mul(u[i]))
	}
	return acc
}

// powerBasis returns [t³, t², t, 1].
func powerBasis[V Value[V]](t V) vec4[V] {
	t2 := t.Mul(t)
	return vec4[V]{t2.Mul(t), t2, t, intVal[V](1)}
}

// powerBasisDeriv returns d/dt of powerBasis: [3t², 2t, 1, 0].
func powerBasisDeriv[V Value[V]](t V) vec4[V] {
	return vec4[V]{
		intVal[V](3).Mul(t.Mul(t)),
		intVal[V](2).Mul(t),
		intVal[V](1),
		intVal[V](0),
	}
}
