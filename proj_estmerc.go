// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

// Evenden/Snyder series coefficients for the approximate transverse
// Mercator (estmerc): less accurate but cheaper than the Poder/Engsager
// series used by etmerc.
const (
	estmercFC1 = 1.0
	estmercFC2 = 0.5
	estmercFC3 = 0.16666666666666666666
	estmercFC4 = 0.08333333333333333333
	estmercFC5 = 0.05
	estmercFC6 = 0.03333333333333333333
	estmercFC7 = 0.02380952380952380952
	estmercFC8 = 0.01785714285714285714
)

// estmercEll is the ellipsoidal form of the approximate transverse Mercator.
type estmercEll struct {
	c          *CRS
	k0, es, esp, ml0 float64
	en         enfnCoeffs
}

// estmercSph is the spherical form, a distinct closed formula rather than a
// degenerate case of estmercEll; its esp and ml0 fields hold k0 and k0/2.
type estmercSph struct {
	c          *CRS
	phi0, esp, ml0 float64
}

func newEstmerc(c *CRS, params *ParamList) (Projection, error) {
	if c.ES != 0 {
		en := enfn(c.ES)
		sinphi0, cosphi0 := math.Sincos(c.Phi0)
		return &estmercEll{
			c:   c,
			k0:  c.K0,
			es:  c.ES,
			esp: c.ES / (1 - c.ES),
			ml0: mlfn(c.Phi0, sinphi0, cosphi0, en),
			en:  en,
		}, nil
	}
	return &estmercSph{c: c, phi0: c.Phi0, esp: c.K0, ml0: 0.5 * c.K0}, nil
}

func (*estmercEll) IsLatLong() bool { return false }
func (*estmercSph) IsLatLong() bool { return false }

func (p *estmercEll) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *estmercEll) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *estmercEll) fwd(lam, phi float64) (float64, float64, error) {
	if lam < -halfPi || lam > halfPi {
		return 0, 0, newErr(KindLatOrLongExceedLimit, "estmerc: longitude more than 90 degrees from central meridian")
	}
	sinphi, cosphi := math.Sincos(phi)
	t := 0.0
	if math.Abs(cosphi) > eps10 {
		t = sinphi / cosphi
	}
	t *= t
	al := cosphi * lam
	als := al * al
	al /= math.Sqrt(1 - p.es*sinphi*sinphi)
	n := p.esp * cosphi * cosphi

	x := p.k0 * al * (estmercFC1 +
		estmercFC3*als*(1-t+n+
			estmercFC5*als*(5+t*(t-18)+n*(14-58*t)+
				estmercFC7*als*(61+t*(t*(179-t)-479)))))
	y := p.k0 * (mlfn(phi, sinphi, cosphi, p.en) - p.ml0 +
		sinphi*al*lam*estmercFC2*(1+
			estmercFC4*als*(5-t+n*(9+4*n)+
				estmercFC6*als*(61+t*(t-58)+n*(270-330*t)+
					estmercFC8*als*(1385+t*(t*(543-t)-3111))))))
	return x, y, nil
}

func (p *estmercEll) inv(x, y float64) (float64, float64, error) {
	phi, err := invMlfn(p.ml0+y/p.k0, p.es, p.en)
	if err != nil {
		return 0, 0, err
	}
	if math.Abs(phi) >= halfPi {
		if y < 0 {
			return 0, -halfPi, nil
		}
		return 0, halfPi, nil
	}
	sinphi, cosphi := math.Sincos(phi)
	t := 0.0
	if math.Abs(cosphi) > 1e-10 {
		t = sinphi / cosphi
	}
	n := p.esp * cosphi * cosphi
	con := 1 - p.es*sinphi*sinphi
	d := x * math.Sqrt(con) / p.k0
	con *= t
	t *= t
	ds := d * d

	lam := d * (estmercFC1 -
		ds*estmercFC3*(1+2*t+n-
			ds*estmercFC5*(5+t*(28+24*t+8*n)+6*n-
				ds*estmercFC7*(61+t*(662+t*(1320+720*t)))))) / cosphi
	outPhi := phi - (con*ds/(1-p.es))*
		estmercFC2*(1-
			ds*estmercFC4*(5+t*(3-9*n)+n*(1-4*n)-
				ds*estmercFC6*(61+t*(90-252*n+45*t)+46*n-
					ds*estmercFC8*(1385+t*(3633+t*(4095+1575*t))))))
	return lam, outPhi, nil
}

func (p *estmercSph) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *estmercSph) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *estmercSph) fwd(lam, phi float64) (float64, float64, error) {
	if lam < -halfPi || lam > halfPi {
		return 0, 0, newErr(KindLatOrLongExceedLimit, "estmerc: longitude more than 90 degrees from central meridian")
	}
	cosphi := math.Cos(phi)
	b := cosphi * math.Sin(lam)
	if math.Abs(math.Abs(b)-1) <= eps10 {
		return 0, 0, newErr(KindToleranceCondition, "estmerc: point too close to the domain boundary")
	}

	x := p.ml0 * math.Log((1+b)/(1-b))
	y := cosphi * math.Cos(lam) / math.Sqrt(1-b*b)

	ay := math.Abs(y)
	if ay >= 1 {
		if ay-1 > eps10 {
			return 0, 0, newErr(KindToleranceCondition, "estmerc: point too close to the domain boundary")
		}
		y = 0
	} else {
		y = math.Acos(y)
	}
	if phi < 0 {
		y = -y
	}
	y = p.esp * (y - p.phi0)
	return x, y, nil
}

func (p *estmercSph) inv(x, y float64) (float64, float64, error) {
	h := math.Exp(x / p.esp)
	g := 0.5 * (h - 1/h)
	h = math.Cos(p.phi0 + y/p.esp)
	phi := math.Asin(math.Sqrt((1 - h*h) / (1 + g*g)))

	if y < 0 && -phi+p.phi0 < 0.0 {
		phi = -phi
	}
	var lam float64
	if g != 0.0 || h != 0.0 {
		lam = math.Atan2(g, h)
	}
	return lam, phi, nil
}
