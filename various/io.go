package various

import (
	"encoding/binary"
	"io"
)

var byteorder = binary.LittleEndian

// WriteFloatSlice writes a length-prefixed float64 slice in little-endian
// byte order.
func WriteFloatSlice(w io.Writer, s []float64) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadFloatSlice reverses WriteFloatSlice.
func ReadFloatSlice(r io.Reader) ([]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]float64, num)
	for i := 0; i < int(num); i++ {
		if err := binary.Read(r, byteorder, &s[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WriteIntSlice writes a length-prefixed int slice, each value widened to
// int64 for a fixed on-disk width regardless of the host's int size.
func WriteIntSlice(w io.Writer, s []int) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, int64(v)); err != nil {
			return err
		}
	}
	return nil
}

// ReadIntSlice reverses WriteIntSlice.
func ReadIntSlice(r io.Reader) ([]int, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]int, num)
	for i := 0; i < int(num); i++ {
		var v int64
		if err := binary.Read(r, byteorder, &v); err != nil {
			return nil, err
		}
		s[i] = int(v)
	}
	return s, nil
}
