// IGRMap - Renewable Gas Indicator Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/igrmap

/*
Package models defines the department-month record shared by the data
service and the dashboard.

Three shapes of the same entity travel over the wire:

  - Document: the stored form, with the "_id" identifier (/api/data/paginated)
  - Record: the stored form without "_id" (/api/data)
  - FilteredRecord: "_id", date, department name and code, igrm; no geometry
    (/api/data/filter)

Geometry is kept as raw GeoJSON so it passes through the service untouched
and is parsed only where it is needed (centroid computation on import, map
rendering on the dashboard).
*/
package models
