// Package geom tem as contas de movimento retilíneo usadas pela simulação.
package geom

// Denominador usado quando o intervalo de Interpolate tem largura zero.
const epsilon = 0.00001

type Vec2 struct {
	X float64
	Y float64
}

// Extrapolate projeta a posição conhecida em t1 para t2 com velocidade
// constante.
func Extrapolate(t1, t2, x, y, vx, vy float64) Vec2 {
	dt := t2 - t1
	return Vec2{
		X: x + vx*dt,
		Y: y + vy*dt,
	}
}

// Extrapolate1 é Extrapolate num eixo só.
func Extrapolate1(t1, t2, x, vx float64) float64 {
	return x + vx*(t2-t1)
}

// Interpolate devolve o valor em [x1, x2] que ocupa, nesse intervalo, a mesma
// posição relativa que t ocupa em [tLower, tUpper]. Ex.: x1=0, x2=10,
// tLower=50, tUpper=100, t=75 devolve 5.
func Interpolate(x1, x2, tLower, tUpper, t float64) float64 {
	r := tUpper - tLower
	if r == 0 {
		r = epsilon
	}
	return (x2-x1)*(t-tLower)/r + x1
}
