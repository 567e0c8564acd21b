package out_test

import "testing/fstest"

const foundationDoc = `---
id: foundation
label: Alapozás
subtitle: Sávalap és talajvizsgálat
group: structure
search_query: sávalap zsaluzás
photos:
  - url: https://example.com/a.jpg
    caption: Zsaluzás
subtabs:
  - id: layers
    label: Rétegek
    diagram:
      width: 20
      height: 6
      art: |-
        +------------------+
        |                  |
        |                  |
        |                  |
        |                  |
        +------------------+
      shapes:
        - hotspot: foundation_wall
          label: Lábazati fal
          x: 1
          y: 1
          w: 8
          h: 4
    records:
      foundation_wall:
        title: Lábazati fal
        accent: "#8b5cf6"
        body: Zsalukőből, vasalva.
  - id: soil
    label: Talaj
    diagram:
      width: 20
      height: 4
      shapes:
        - hotspot: clay
          x: 0
          y: 0
          w: 10
          h: 2
    records:
      clay:
        title: Agyag
        accent: "#b45309"
        body: Duzzadó talaj, mélyebb alapozás kell.
---
Az alapozás hordja az egész házat.
`

const roofDoc = `---
label: Tető
group: structure
subtabs:
  - id: truss
    label: Szerkezet
    diagram:
      width: 10
      height: 3
      shapes:
        - hotspot: rafter
          x: 0
          y: 0
          w: 4
          h: 2
    records:
      rafter:
        title: Szarufa
        accent: "#0ea5e9"
        body: Fenyő, gombamentesítve.
---
`

const taxonomyDoc = `schema_version: 1
default_topic: foundation
groups:
  - id: structure
    label: Szerkezet
    topics: [foundation]
  - id: finishing
    label: Befejezés
`

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"taxonomy.yaml":        {Data: []byte(taxonomyDoc)},
		"topics/foundation.md": {Data: []byte(foundationDoc)},
		"topics/Tető.md":       {Data: []byte(roofDoc)},
		"topics/notes.txt":     {Data: []byte("ignored")},
	}
}
