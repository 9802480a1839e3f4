package landsat

import (
	"matbm.net/watercolor/imagery/raster"
)

// QA is a Landsat 8 surface reflectance pixel_qa value.
type QA uint16

// pixel_qa bits.
const (
	QACloudShadow QA = 1 << 3
	QASnowIce     QA = 1 << 4
	QACloud       QA = 1 << 5
)

// ReflectanceScale converts surface reflectance digital numbers to reflectance.
const ReflectanceScale = 10000

// Has reports whether any bit of flag is set.
func (q QA) Has(flag QA) bool {
	return q&flag != 0
}

// Cloudy reports cloud or cloud shadow.
func (q QA) Cloudy() bool {
	return q.Has(QACloudShadow) || q.Has(QACloud)
}

// Clear reports a pixel free of cloud, cloud shadow and snow/ice.
func (q QA) Clear() bool {
	return !q.Cloudy() && !q.Has(QASnowIce)
}

// MaskSR masks cloud, cloud shadow and snow/ice pixels of the reflectance
// bands, scales them to reflectance and replaces pixel_qa with 0/1 cloud
// and snowIce flag bands. It must only be applied once per scene.
func MaskSR(s *Scene) error {
	qa, err := s.Band(BandQA)
	if err != nil {
		return err
	}

	cloud := raster.NewBand(s.Width, s.Height)
	snowIce := raster.NewBand(s.Width, s.Height)
	keep := make([]bool, qa.Len())
	for i, v := range qa.Data {
		if raster.IsNaN(v) {
			cloud.Data[i] = raster.NaN()
			snowIce.Data[i] = raster.NaN()
			continue
		}
		q := QA(uint16(v))
		if q.Cloudy() {
			cloud.Data[i] = 1
		}
		if q.Has(QASnowIce) {
			snowIce.Data[i] = 1
		}
		keep[i] = q.Clear()
	}

	for _, name := range s.BandNames() {
		if !IsReflectanceBand(name) {
			continue
		}
		src := s.bands[name]
		dst := raster.NewBand(s.Width, s.Height)
		for i, v := range src.Data {
			if keep[i] {
				dst.Data[i] = v / ReflectanceScale
			} else {
				dst.Data[i] = raster.NaN()
			}
		}
		s.bands[name] = dst
	}

	s.RemoveBand(BandQA)
	if err := s.AddBand(BandCloud, cloud); err != nil {
		return err
	}
	return s.AddBand(BandSnowIce, snowIce)
}
