// Package scaffold renders embedded file templates into a project. It
// produces the Python glue that exposes a Vue.js project as a Django app:
// an empty __init__.py marking the package and a urls.py routing the app
// root to its index.html template.
package scaffold
