package xsdtree

import "strconv"

// ComputePaths walks the forest and assigns each node its absolute path,
// writing the path onto the node and returning the full node-to-path map.
//
// A node's path is its parent's path plus "/" plus its display name ("*"
// when the name is empty). When more than one sibling under the same parent
// shares a display name, each gets a 1-based positional predicate "[k]";
// uniquely named siblings get none. Roots are disambiguated the same way
// across the root list. Positions follow the order children were appended
// during tree construction, so paths are deterministic and recomputing them
// on an already-annotated forest is a no-op.
func ComputePaths(forest []*ElementNode) map[*ElementNode]string {
	paths := make(map[*ElementNode]string)
	assignPaths("", forest, paths)
	return paths
}

// assignPaths computes the paths of one sibling group and descends.
func assignPaths(parentPath string, siblings []*ElementNode, paths map[*ElementNode]string) {
	nameCounts := make(map[string]int, len(siblings))
	for _, node := range siblings {
		nameCounts[node.Name]++
	}

	position := make(map[string]int, len(nameCounts))
	for _, node := range siblings {
		segment := node.Name
		if segment == "" {
			segment = "*"
		}
		path := parentPath + "/" + segment
		if nameCounts[node.Name] > 1 {
			position[node.Name]++
			path += "[" + strconv.Itoa(position[node.Name]) + "]"
		}

		node.Path = path
		paths[node] = path
		assignPaths(path, node.Children, paths)
	}
}
