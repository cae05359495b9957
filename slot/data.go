// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package slot provides equivalent orthotropic elastic properties of thick
// plates perforated with a regular square array of holes, after the tables in
// Slot, T. (1972) "Stress Analysis of Thick Perforated Plates" (dissertation).
// All results are ratios with respect to the isotropic solid material; the
// caller multiplies by the solid elastic constants to obtain engineering
// properties. Subscript p denotes the in-plane directions and subscript z the
// direction of the plate's thickness
package slot

// Reference axes. NuAxis holds the tabulated Poisson's ratios of the solid
// material and EtaAxis the tabulated ligament efficiencies. Reference data:
// do not modify
var (
	NuAxis  = []float64{0, 0.1, 0.2, 0.25, 0.3, 0.4, 0.5}
	EtaAxis = []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.7}
)

// EpE holds the in-plane modulus ratio Ep*/E from Table B.2 of (Slot 1972),
// rows along NuAxis and columns along EtaAxis. Reference data: do not modify
var EpE = [][]float64{
	{0.1200, 0.1857, 0.2444, 0.3000, 0.3539, 0.4069, 0.5117, 0.6168, 0.8244},
	{0.1207, 0.1866, 0.2455, 0.3012, 0.3552, 0.4082, 0.5132, 0.6183, 0.8253},
	{0.1229, 0.1894, 0.2487, 0.3048, 0.3591, 0.4125, 0.5176, 0.6226, 0.8281},
	{0.1246, 0.1916, 0.2512, 0.3076, 0.3622, 0.4157, 0.5210, 0.6259, 0.8303},
	{0.1267, 0.1943, 0.2511, 0.3111, 0.3659, 0.4197, 0.5253, 0.6300, 0.8329},
	{0.1324, 0.2015, 0.2627, 0.3203, 0.3759, 0.4302, 0.5363, 0.6407, 0.8396},
	{0.1406, 0.2116, 0.2742, 0.3330, 0.3895, 0.4445, 0.5512, 0.6549, 0.8483},
}

// Nup holds the in-plane Poisson's ratio νp* from Table B.2 of (Slot 1972).
// Reference data: do not modify
var Nup = [][]float64{
	{0.0264, 0.0399, 0.0511, 0.0606, 0.0688, 0.0754, 0.0830, 0.0814, 0.0502},
	{0.0354, 0.0551, 0.0721, 0.0873, 0.1010, 0.1132, 0.1317, 0.1411, 0.1316},
	{0.0386, 0.0637, 0.0866, 0.1078, 0.1275, 0.1455, 0.1760, 0.1974, 0.2115},
	{0.0379, 0.0656, 0.0914, 0.1158, 0.1386, 0.1599, 0.1966, 0.2244, 0.2510},
	{0.0356, 0.0657, 0.0946, 0.1222, 0.1484, 0.1730, 0.2165, 0.2509, 0.2903},
	{0.0259, 0.0606, 0.0960, 0.1307, 0.1641, 0.1960, 0.2538, 0.3023, 0.3685},
	{0.0080, 0.0474, 0.0901, 0.1328, 0.1745, 0.2145, 0.2883, 0.3523, 0.4468},
}

// GpG holds the in-plane shear modulus ratio Gp*/G from Table B.2 of
// (Slot 1972). Reference data: do not modify
var GpG = [][]float64{
	{0.0068, 0.0207, 0.0413, 0.0695, 0.1061, 0.1514, 0.2691, 0.4177, 0.7450},
	{0.0075, 0.0227, 0.0453, 0.0760, 0.1154, 0.1641, 0.2882, 0.4411, 0.7627},
	{0.0082, 0.0247, 0.0492, 0.0823, 0.1246, 0.1764, 0.3064, 0.4626, 0.7781},
	{0.0085, 0.0257, 0.0511, 0.0854, 0.1291, 0.1824, 0.3152, 0.4728, 0.7850},
	{0.0088, 0.0267, 0.0531, 0.0886, 0.1336, 0.1883, 0.3237, 0.4826, 0.7916},
	{0.0095, 0.0287, 0.0569, 0.0947, 0.1424, 0.1999, 0.3401, 0.5011, 0.8035},
	{0.0102, 0.0307, 0.0608, 0.1008, 0.1511, 0.2112, 0.3558, 0.5183, 0.8142},
}

// EtaZAxis holds the tabulated transverse ligament efficiencies for the
// curves of Table 4.2 of (Slot 1972). Reference data: do not modify
var EtaZAxis = []float64{0.0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// EzE holds the transverse modulus ratio Ez*/E aligned with EtaZAxis, from
// Table 4.2 of (Slot 1972). Reference data: do not modify
var EzE = []float64{0.2146, 0.2912, 0.3638, 0.4326, 0.4974, 0.5582, 0.6152, 0.7173, 0.8037, 0.8743, 0.9293, 0.9686, 0.9922, 1.0000}

// GzG holds the transverse shear modulus ratio Gz*/G aligned with EtaZAxis,
// from Table 4.2 of (Slot 1972). Reference data: do not modify
var GzG = []float64{0.0000, 0.1260, 0.1965, 0.2607, 0.3221, 0.3822, 0.4415, 0.5585, 0.6716, 0.7767, 0.8680, 0.9391, 0.9844, 1.0000}
