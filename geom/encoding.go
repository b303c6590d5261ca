// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Every primitive encodes as a field-by-field record. Decoding goes through the
// type's constructor, so a record describing invalid geometry fails with the
// constructor's error.

type pointRecord struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type lineRecord struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

type circleRecord struct {
	Center Point   `json:"center" yaml:"center"`
	Radius float64 `json:"radius" yaml:"radius"`
}

type rectRecord struct {
	TopLeft     Point `json:"topLeft" yaml:"topLeft"`
	BottomRight Point `json:"bottomRight" yaml:"bottomRight"`
}

type pointsRecord struct {
	Points []Point `json:"points" yaml:"points"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointRecord(p))
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var r pointRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*p = Point(r)
	return nil
}

func (p Point) MarshalYAML() (interface{}, error) {
	return pointRecord(p), nil
}

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var r pointRecord
	if err := value.Decode(&r); err != nil {
		return err
	}
	*p = Point(r)
	return nil
}

func (l Line) record() lineRecord {
	return lineRecord{Start: l.start, End: l.end}
}

func (r lineRecord) build() (Line, error) {
	return NewLine(r.Start, r.End)
}

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.record())
}

func (l *Line) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, l, lineRecord.build)
}

func (l Line) MarshalYAML() (interface{}, error) {
	return l.record(), nil
}

func (l *Line) UnmarshalYAML(value *yaml.Node) error {
	return decodeYAML(value, l, lineRecord.build)
}

func (c Circle) record() circleRecord {
	return circleRecord{Center: c.center, Radius: c.radius}
}

func (r circleRecord) build() (Circle, error) {
	return NewCircle(r.Center, r.Radius)
}

func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.record())
}

func (c *Circle) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, c, circleRecord.build)
}

func (c Circle) MarshalYAML() (interface{}, error) {
	return c.record(), nil
}

func (c *Circle) UnmarshalYAML(value *yaml.Node) error {
	return decodeYAML(value, c, circleRecord.build)
}

func (r Rect) record() rectRecord {
	return rectRecord{TopLeft: r.TopLeft(), BottomRight: r.BottomRight()}
}

func (r rectRecord) build() (Rect, error) {
	return NewRect(r.TopLeft, r.BottomRight), nil
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.record())
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, r, rectRecord.build)
}

func (r Rect) MarshalYAML() (interface{}, error) {
	return r.record(), nil
}

func (r *Rect) UnmarshalYAML(value *yaml.Node) error {
	return decodeYAML(value, r, rectRecord.build)
}

func (t Triangle) record() pointsRecord {
	return pointsRecord{Points: t.pts[:]}
}

func buildTriangle(r pointsRecord) (Triangle, error) {
	return NewTriangle(r.Points...)
}

func (t Triangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.record())
}

func (t *Triangle) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, t, buildTriangle)
}

func (t Triangle) MarshalYAML() (interface{}, error) {
	return t.record(), nil
}

func (t *Triangle) UnmarshalYAML(value *yaml.Node) error {
	return decodeYAML(value, t, buildTriangle)
}

func (p Polygon) record() pointsRecord {
	return pointsRecord{Points: p.pts}
}

func buildPolygon(r pointsRecord) (Polygon, error) {
	return NewPolygon(r.Points...)
}

func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.record())
}

func (p *Polygon) UnmarshalJSON(data []byte) error {
	return decodeJSON(data, p, buildPolygon)
}

func (p Polygon) MarshalYAML() (interface{}, error) {
	return p.record(), nil
}

func (p *Polygon) UnmarshalYAML(value *yaml.Node) error {
	return decodeYAML(value, p, buildPolygon)
}

func decodeJSON[R, T any](data []byte, dst *T, build func(R) (T, error)) error {
	var r R
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := build(r)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func decodeYAML[R, T any](value *yaml.Node, dst *T, build func(R) (T, error)) error {
	var r R
	if err := value.Decode(&r); err != nil {
		return err
	}
	v, err := build(r)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
