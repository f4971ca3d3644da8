package gantt

// Organize orders tasks parent first: every root in input order, each
// followed by its subtree, children also in input order.
//
// A task whose ParentID matches no task is promoted to a root instead of
// being dropped, so a source that filters out a parent (an undated Todoist
// task, say) still shows the child. Tasks that no root can reach sit on a
// parent loop and are reported as a *CycleError.
func Organize(tasks []Task) ([]Node, error) {
	ids := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = true
	}

	children := make(map[string][]int)
	var roots []int
	for i, t := range tasks {
		if !t.HasParent() || !ids[t.ParentID] {
			roots = append(roots, i)
			continue
		}
		children[t.ParentID] = append(children[t.ParentID], i)
	}

	type frame struct {
		index int
		depth int
	}

	out := make([]Node, 0, len(tasks))
	visited := make([]bool, len(tasks))
	expanded := make(map[string]bool)

	// Stack is popped from the end, so push siblings in reverse.
	stack := make([]frame, 0, len(tasks))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{index: roots[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[f.index] {
			continue
		}
		visited[f.index] = true

		t := tasks[f.index]
		out = append(out, Node{Task: t, Depth: f.depth})

		// Duplicate ids share one child list; expand it once.
		if expanded[t.ID] {
			continue
		}
		expanded[t.ID] = true

		kids := children[t.ID]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{index: kids[i], depth: f.depth + 1})
		}
	}

	if len(out) < len(tasks) {
		cycle := &CycleError{}
		for i, seen := range visited {
			if !seen {
				cycle.IDs = append(cycle.IDs, tasks[i].ID)
			}
		}
		return nil, cycle
	}

	return out, nil
}
